package server

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/utility-bills/internal/bill"
)

// documentFromStruct decodes a request payload keeping numbers exact.
func documentFromStruct(s *structpb.Struct) (*bill.Document, error) {
	if s == nil {
		return nil, fmt.Errorf("empty request")
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return nil, err
	}
	return bill.Parse(b)
}

// toStruct converts a tree that may hold json.Number values.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}
