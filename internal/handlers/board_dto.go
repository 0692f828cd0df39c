package handlers

import (
	"fmt"

	"github.com/gorilla/schema"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type boardQuery struct {
	Seed   *uint64 `schema:"seed"`
	Style  string  `schema:"style"`
	Format string  `schema:"format"`
}

func decodeBoardQuery(src map[string][]string) (boardQuery, error) {
	var dto boardQuery
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	switch dto.Format {
	case "":
		dto.Format = formatText
	case formatText, formatJSON:
	default:
		return dto, fmt.Errorf("unknown format %q", dto.Format)
	}
	return dto, nil
}
