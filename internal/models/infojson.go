package models

// InfoJSON is the subset of a yt-dlp info JSON document md reads.
type InfoJSON struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Uploader    string   `json:"uploader"`
	UploadDate  string   `json:"upload_date"`
	Duration    float64  `json:"duration"`
	Categories  []string `json:"categories"`
	WebpageURL  string   `json:"webpage_url"`
	Extractor   string   `json:"extractor"`
	Formats     []Format `json:"formats"`
	IsLive      bool     `json:"is_live"`
	Description string   `json:"description"`
}

// Format is one downloadable format listed in the info JSON.
//
// Codec fields holding yt-dlp's literal "none" are normalised to "".
type Format struct {
	FormatID   string  `json:"format_id"`
	FormatNote string  `json:"format_note"`
	Ext        string  `json:"ext"`
	Acodec     string  `json:"acodec"`
	Vcodec     string  `json:"vcodec"`
	Resolution string  `json:"resolution"`
	Width      int64   `json:"width"`
	Height     int64   `json:"height"`
	Asr        int64   `json:"asr"`
	Filesize   uint64  `json:"filesize"`
	Tbr        float64 `json:"tbr"`
}

// AudioOnly reports whether the format carries audio and no video.
func (f *Format) AudioOnly() bool {
	return f.Acodec != "" && f.Vcodec == ""
}

// VideoOnly reports whether the format carries video and no audio.
func (f *Format) VideoOnly() bool {
	return f.Vcodec != "" && f.Acodec == ""
}
