package http

import "escrow-marketplace/internal/metadata"

type uploadResp struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func newUploadResp(obj metadata.Object) uploadResp {
	return uploadResp{URL: obj.URL, Filename: obj.Name}
}
