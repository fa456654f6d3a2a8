package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// errNilMessage is returned when decoding a nil struct.
var errNilMessage = errors.New("message is nil")

// Encode converts v, which must marshal to a JSON object, into a Struct.
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}

	msg := new(structpb.Struct)
	if err = protojson.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("convert %T to struct: %w", v, err)
	}

	return msg, nil
}

// Decode fills v, a pointer, from the Struct.
func Decode(msg *structpb.Struct, v any) error {
	if msg == nil {
		return errNilMessage
	}

	data, err := protojson.Marshal(msg)
	if err != nil {
		return fmt.Errorf("convert struct: %w", err)
	}

	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}

	return nil
}

// MarshalIndent renders the Struct as indented JSON for files and terminals.
func MarshalIndent(msg *structpb.Struct) ([]byte, error) {
	options := protojson.MarshalOptions{
		Multiline:       true,
		Indent:          "  ",
		EmitUnpopulated: true,
	}

	data, err := options.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal struct: %w", err)
	}

	return data, nil
}

// UnmarshalJSON parses JSON produced by MarshalIndent.
func UnmarshalJSON(data []byte) (*structpb.Struct, error) {
	msg := new(structpb.Struct)
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("unmarshal struct: %w", err)
	}

	return msg, nil
}
