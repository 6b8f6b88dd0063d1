// Package loader assembles namegen input from word-list files described
// by a YAML manifest.
//
// A manifest names the base source, any number of expansion sources, the
// two blacklists, and an optional known-full-names file. Word lists live
// under each source's directory as <race>_<sex>_first.txt and
// <race>_<sex>_last.txt; a source that lacks the lists for a given
// selection is simply skipped. Files are fetched through a Fetcher, with
// implementations for any fs.FS and for plain HTTP file hosting.
//
// Loading is tolerant by design: an absent optional file is logged and
// ignored, while any other fetch failure propagates to the caller.
// Whether the assembled input actually contains enough data is decided by
// namegen.Session.Load, which fails eagerly when a required pool ends up
// empty.
//
// # Usage
//
//	m, err := loader.ParseManifest(manifestBytes)
//	if err != nil { ... }
//
//	l := loader.New(m, loader.NewFSFetcher(os.DirFS(dataDir)))
//	in, err := l.Load(ctx, loader.Selection{Race: "dunmer", Sex: "male"})
//	if err != nil { ... }
//
//	s := namegen.NewSession()
//	err = s.Load(in)
package loader
