// Package main provides the peoplemerge CLI: merging the reference table
// with article-corpus facts, building the search index, and querying it.
package main

func main() {
	Execute()
}
