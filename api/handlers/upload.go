package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/pkg/errors"

	"github.com/petbazaar/petbazaar-api/config"
)

// Upload signs direct browser uploads of pet images to cloudinary
type Upload struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	now          func() time.Time
}

type signatureResponse struct {
	Timestamp    string `json:"timestamp"`
	Signature    string `json:"signature"`
	APIKey       string `json:"apiKey"`
	CloudName    string `json:"cloudName"`
	UploadPreset string `json:"uploadPreset,omitempty"`
}

// SignatureHandler returns the parameters the client needs for a signed upload
func (u Upload) SignatureHandler(w http.ResponseWriter, r *http.Request) {
	if u.APISecret == "" || u.CloudName == "" {
		config.ErrorStatus("Image uploads are not configured.", http.StatusInternalServerError, w, errors.New("cloudinary credentials are not set"))
		return
	}

	now := time.Now
	if u.now != nil {
		now = u.now
	}
	timestamp := strconv.FormatInt(now().Unix(), 10)

	params := url.Values{}
	params.Set("timestamp", timestamp)
	if u.UploadPreset != "" {
		params.Set("upload_preset", u.UploadPreset)
	}

	signature, err := api.SignParameters(params, u.APISecret)
	if err != nil {
		config.ErrorStatus(msgServerError, http.StatusInternalServerError, w, err)
		return
	}

	config.WriteJSON(w, http.StatusOK, signatureResponse{
		Timestamp:    timestamp,
		Signature:    signature,
		APIKey:       u.APIKey,
		CloudName:    u.CloudName,
		UploadPreset: u.UploadPreset,
	})
}
