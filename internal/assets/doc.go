// Package assets holds the stylesheets bundled with md2htmldoc and the
// lookup used to override them.
//
// Styles are addressed by bare name (github-markdown, not
// github-markdown.css). EmbeddedLoader serves the copies compiled into the
// binary. FilesystemLoader serves <asset-path>/styles/<name>.css and
// refuses files that resolve outside that directory. AssetResolver chains
// the two so a directory can replace one stylesheet and inherit the rest:
//
//	<asset-path>/
//	└── styles/
//	    └── github-markdown.css
package assets
