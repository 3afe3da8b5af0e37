package media

import "testing"

func TestVideos(t *testing.T) {
	videos := Videos()
	if len(videos) != 8 {
		t.Fatalf("got %d videos, want 8", len(videos))
	}
	if videos[0].URL != "https://www.youtube.com/watch?v=eiMOxvZKyvM" {
		t.Errorf("first URL = %q", videos[0].URL)
	}
	if videos[7].EmbedURL != "https://www.youtube.com/embed/8PwoytUU06g" {
		t.Errorf("last embed URL = %q", videos[7].EmbedURL)
	}

	// Callers get their own copy.
	videos[0].URL = "changed"
	if Videos()[0].URL == "changed" {
		t.Error("Videos() shares its backing array with callers")
	}
}
