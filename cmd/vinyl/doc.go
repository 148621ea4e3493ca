// Command vinyl browses a record collection from the terminal.
//
// It reads the same sources and configuration as the web server
// (CATALOG_SOURCE, COVERS_DIR, COVERS_BASE_URL, ...) and runs the same
// filter and search pipeline:
//
//	vinyl search purple rain
//	vinyl search --genre Jazz --released 1959 --released 1964 --view cards
//	vinyl facets
//	vinyl cover "Prince" "Purple Rain"
//
// Flags override the environment for a single invocation.
package main
