package responses

type MaterialUpload struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
}
