package chapters

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

// Track is a media file with its chapter markers.
type Track struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Size     int64
	Duration time.Duration
	Chapters []Chapter
}

// LoadTrack reads metadata and chapter markers of a media file.
// MP3 files are read through their ID3v2 tag (CHAP and TLEN frames); other
// containers only provide metadata. A file without tags is not an error.
func LoadTrack(path string) (*Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	t := &Track{Path: path, Size: info.Size()}

	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		if err := readID3(path, t); err != nil {
			return nil, err
		}
	} else if err := readTags(path, t); err != nil {
		return nil, err
	}

	if t.Title == "" {
		t.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if t.Duration == 0 {
		t.Duration = lastChapterEnd(t.Chapters)
	}
	return t, nil
}

func readID3(path string, t *Track) error {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("read id3 tag: %w", err)
	}
	defer id3tag.Close()

	t.Title = id3tag.Title()
	t.Artist = id3tag.Artist()
	t.Album = id3tag.Album()

	if tlen := id3tag.GetTextFrame("TLEN").Text; tlen != "" {
		if ms, err := strconv.ParseInt(strings.TrimSpace(tlen), 10, 64); err == nil && ms > 0 {
			t.Duration = time.Duration(ms) * time.Millisecond
		}
	}

	var end time.Duration
	for _, frame := range id3tag.GetFrames("CHAP") {
		cf, ok := frame.(id3v2.ChapterFrame)
		if !ok {
			continue
		}
		ch := Chapter{Start: cf.StartTime}
		if cf.Title != nil {
			ch.Title = cf.Title.Text
		}
		if ch.Title == "" {
			ch.Title = cf.ElementID
		}
		t.Chapters = append(t.Chapters, ch)
		end = max(end, cf.EndTime)
	}
	slices.SortStableFunc(t.Chapters, func(a, b Chapter) int {
		return cmp.Compare(a.Start, b.Start)
	})
	if t.Duration == 0 && end > 0 {
		t.Duration = end
	}
	return nil
}

func readTags(path string, t *Track) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	md, err := tag.ReadFrom(f)
	if errors.Is(err, tag.ErrNoTagsFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read tags: %w", err)
	}
	t.Title = md.Title()
	t.Artist = md.Artist()
	t.Album = md.Album()
	return nil
}

// lastChapterEnd is a lower bound of the duration when nothing better is known.
func lastChapterEnd(chs []Chapter) time.Duration {
	if len(chs) == 0 {
		return 0
	}
	return chs[len(chs)-1].Start
}
