// Package imageref valida referencias de imagen opacas: URLs http(s) o data URIs inline.
// No interpreta pixeles; solo olfatea la cabecera del payload inline para confirmar que es image/*.
package imageref

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"pet-adoption/internal/platform/apperr"
)

// MaxInlineBytes limita el payload decodificado de un data URI (las fotos llegan muy comprimidas).
const MaxInlineBytes = 2 << 20

// Validate devuelve la referencia normalizada o un error de validación.
func Validate(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", apperr.Invalid("empty image reference")
	}

	if strings.HasPrefix(ref, "data:") {
		if err := validateDataURI(ref); err != nil {
			return "", err
		}
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperr.Invalid("image reference must be an http(s) url or a data uri")
	}
	return ref, nil
}

func validateDataURI(ref string) error {
	raw, err := decodeDataURI(ref)
	if err != nil {
		return err
	}
	if len(raw) > MaxInlineBytes {
		return apperr.Invalid("inline image too large")
	}
	mt := mimetype.Detect(raw)
	if !strings.HasPrefix(mt.String(), "image/") {
		return apperr.Invalid("inline payload is not an image: " + mt.String())
	}
	return nil
}

func decodeDataURI(ref string) ([]byte, error) {
	// data:[<mediatype>][;base64],<data>
	comma := strings.IndexByte(ref, ',')
	if comma < 0 {
		return nil, apperr.Invalid("malformed data uri")
	}
	header, payload := ref[len("data:"):comma], ref[comma+1:]
	if !strings.HasSuffix(header, ";base64") {
		return nil, apperr.Invalid("data uri must be base64 encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperr.Invalid("data uri payload is not valid base64")
	}
	return raw, nil
}
