// Prints the chapters found in media files, without starting the UI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/chapters/internal/chapters"
	"github.com/llehouerou/chapters/internal/errmsg"
	"github.com/llehouerou/chapters/internal/ui/render"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: chapinfo <file>...")
	}

	failed := false
	for _, path := range os.Args[1:] {
		track, err := chapters.LoadTrack(path)
		if err != nil {
			log.Print(errmsg.FormatWith(errmsg.OpChaptersLoad, path, err))
			failed = true
			continue
		}
		printTrack(track)
	}
	if failed {
		os.Exit(1)
	}
}

func printTrack(t *chapters.Track) {
	fmt.Printf("%s (%s, %s)\n", t.Title, render.FormatDuration(t.Duration), humanize.Bytes(uint64(t.Size)))
	if t.Artist != "" {
		fmt.Printf("  by %s\n", t.Artist)
	}
	if len(t.Chapters) == 0 {
		fmt.Println("  no chapters")
		return
	}
	for i, ch := range t.Chapters {
		fmt.Printf("  %3d  %8s  %8s  %s\n", i+1,
			render.FormatDuration(ch.Start),
			render.FormatDuration(chapters.Length(t.Chapters, i, t.Duration)),
			render.Sanitize(ch.Title))
	}
}
