// Command reelmatch recommends movies and TV shows that read like one you
// already know.
//
// It loads a catalog CSV (the Netflix titles export layout), ranks every
// title by TF-IDF cosine similarity against the query, and looks up poster
// art from TMDB or OMDb, falling back to a generated placeholder.
//
//	reelmatch recommend "Stranger Things" -n 5
//	reelmatch recommend dark --save-posters ./posters
//	reelmatch poster "The Crown" --out crown.png
//	reelmatch catalog stats
//	reelmatch history --limit 10
//	reelmatch config init
package main
