package minutes

// GenerateResponse is the terminal artifact of the pipeline: the formatted
// Minutes of Meeting document
type GenerateResponse struct {
	Minutes string `json:"minutes"`
}
