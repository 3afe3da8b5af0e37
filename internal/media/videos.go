// Package media holds the static instructional resources shown next to every
// plan. Nothing here depends on plan content.
package media

// PlanFilename is the name offered when a plan is downloaded.
const PlanFilename = "Personalized_Plan.txt"

// Video is one instructional YouTube video.
type Video struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	EmbedURL string `json:"embed_url"`
}

var videoIDs = []string{
	"eiMOxvZKyvM",
	"YaXPRqUwItQ",
	"0Av02v-gMw8",
	"OzrQdH4VEIs",
	"q7rCeOa_m58",
	"1tHZ-hUH2P8",
	"5kstCo2lZW0",
	"8PwoytUU06g",
}

// Videos returns a fresh copy of the video list, in display order.
func Videos() []Video {
	out := make([]Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		out = append(out, Video{
			ID:       id,
			URL:      "https://www.youtube.com/watch?v=" + id,
			EmbedURL: "https://www.youtube.com/embed/" + id,
		})
	}
	return out
}
