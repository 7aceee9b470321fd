package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/Simplici0/candle-pricer/internal/pricing"
)

// formOverheadBytes is allowed on top of the image limit for the other fields.
const formOverheadBytes = 1 << 20

var (
	errImageTooLarge = errors.New("image is too large")
	errNotImage      = errors.New("image must be an image file")
	errInvalidBody   = errors.New("invalid request body")
)

// parseCalculation reads candle inputs from a JSON, multipart or urlencoded body.
// Numeric fields that are missing or unparseable become 0.
func (s *server) parseCalculation(w http.ResponseWriter, r *http.Request) (pricing.Input, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxImageBytes+formOverheadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		return parseCalculationJSON(r.Body)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(s.maxImageBytes); err != nil {
			return pricing.Input{}, "", bodyError(err)
		}
		image, err := s.imageFromForm(r.MultipartForm)
		if err != nil {
			return pricing.Input{}, "", err
		}
		return inputFromForm(r.MultipartForm.Value), image, nil
	default:
		if err := r.ParseForm(); err != nil {
			return pricing.Input{}, "", bodyError(err)
		}
		return inputFromForm(r.PostForm), "", nil
	}
}

func parseCalculationJSON(body io.Reader) (pricing.Input, string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return pricing.Input{}, "", bodyError(err)
	}

	var in pricing.Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return pricing.Input{}, "", errInvalidBody
	}

	var extra struct {
		Image string `json:"image"`
	}
	// A non-string image is ignored rather than rejected.
	_ = json.Unmarshal(raw, &extra)

	return in, extra.Image, nil
}

func inputFromForm(values url.Values) pricing.Input {
	number := func(key string) float64 { return pricing.ParseNumber(values.Get(key)) }

	return pricing.Input{
		Name:                   strings.TrimSpace(values.Get("name")),
		JarCost:                number("jar"),
		WaxGrams:               number("waxGrams"),
		WickCost:               number("wick"),
		FragrancePricePerLiter: number("fragPricePerL"),
		FragranceGrams:         number("fragGrams"),
		ColorDrops:             number("colorDrops"),
		PackagingBox:           number("packBox"),
		PackagingSticker:       number("packSticker"),
		PackagingRibbon:        number("packRibbon"),
		AdditionalCharges:      number("additional"),
		ProfitPercent:          number("profitPct"),
		GSTPercent:             number("gstPct"),
		ApplyGST:               pricing.ParseFlag(values.Get("applyGst")),
	}
}

// imageFromForm turns an uploaded "image" file into a data URL. No file means no image.
func (s *server) imageFromForm(form *multipart.Form) (string, error) {
	if form == nil || len(form.File["image"]) == 0 {
		return "", nil
	}

	header := form.File["image"][0]
	if header.Size > s.maxImageBytes {
		return "", errImageTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("read uploaded image: %w", err)
	}
	if int64(len(data)) > s.maxImageBytes {
		return "", errImageTooLarge
	}
	if len(data) == 0 {
		return "", nil
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", errNotImage
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errImageTooLarge
	}
	return errInvalidBody
}
