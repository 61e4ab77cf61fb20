// Command postarr delivers curated artwork to Plex or to a local asset
// directory tree.
package main

func main() {
	Execute()
}
