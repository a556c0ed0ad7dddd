// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

// StatusCode is the top-level "code" field of a catalog response.
//
// The catalog reports most outcomes as a JSON number, but credential and
// parameter failures come back as JSON strings (e.g. "InvalidCredentials").
// Numeric strings are accepted as numbers; any other string is kept in Text
// and the code is treated as non-success.
type StatusCode struct {
	Value int
	Text  string
	Set   bool
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *StatusCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = StatusCode{}
		return nil
	}

	if b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		if n, err := strconv.Atoi(text); err == nil {
			*s = StatusCode{Value: n, Set: true}
			return nil
		}
		*s = StatusCode{Text: text, Set: true}
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = StatusCode{Value: n, Set: true}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (s StatusCode) MarshalJSON() ([]byte, error) {
	if !s.Set {
		return []byte("null"), nil
	}
	if s.Text != "" {
		return json.Marshal(s.Text)
	}
	return json.Marshal(s.Value)
}

// IsOK reports whether the code equals the HTTP success code.
func (s StatusCode) IsOK() bool {
	return s.Set && s.Text == "" && s.Value == http.StatusOK
}

// CatalogResponse is the envelope every catalog endpoint returns.
type CatalogResponse struct {
	Code    StatusCode  `json:"code"`
	Status  string      `json:"status,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    CatalogData `json:"data"`
}

// CatalogData is the result container of a [CatalogResponse].
type CatalogData struct {
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
	Total   int                `json:"total"`
	Count   int                `json:"count"`
	Results []CatalogCharacter `json:"results"`
}

// CatalogCharacter is a character record as served by the catalog.
type CatalogCharacter struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Thumbnail   Thumbnail `json:"thumbnail"`
	Comics      WorkList  `json:"comics"`
}

// Thumbnail locates a catalog image. The full URL is Path + "." + Extension.
type Thumbnail struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// URL composes the picture location.
func (t Thumbnail) URL() string {
	return t.Path + "." + t.Extension
}

// WorkList is the list of works (comics) a character appears in.
type WorkList struct {
	Available int             `json:"available"`
	Items     []WorkReference `json:"items"`
}

// WorkReference locates a single work. It only lives for the duration of a
// synchronization run and is never persisted.
type WorkReference struct {
	ResourceURI string `json:"resourceURI"`
	Name        string `json:"name"`
}

// ToCharacter maps the catalog record onto the stored representation.
func (c CatalogCharacter) ToCharacter() Character {
	return Character{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PictureURL:  c.Thumbnail.URL(),
	}
}
