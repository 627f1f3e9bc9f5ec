// Package pages loads the site's HTML pages from an fs.FS.
//
// A Store caches page sources and hands out freshly parsed, enhanced
// documents, one per call, so request handlers can mutate them freely.
// Watch keeps the cache in sync with a directory on disk during
// development; bursts of file events are coalesced before invalidation.
//
//	store := pages.New(os.DirFS("web"), pages.WithEnhancers(enhance.Default()...))
//	go store.Watch(ctx, "web")
//
//	doc, err := store.Document(ctx, "contacto")
package pages
