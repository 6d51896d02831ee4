package graph

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Emitter represents an output generator
type Emitter interface {
	Emit(files []*File) ([]byte, error)
}

// JSONEmitter emits files as an indented JSON array
type JSONEmitter struct{}

// Emit encodes files
func (e *JSONEmitter) Emit(files []*File) ([]byte, error) {
	if files == nil {
		files = []*File{}
	}
	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLEmitter emits files as a YAML sequence
type YAMLEmitter struct{}

// Emit encodes files
func (e *YAMLEmitter) Emit(files []*File) ([]byte, error) {
	if files == nil {
		files = []*File{}
	}
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(files); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// NewEmitter returns an emitter for the json or yaml format
func NewEmitter(format string) (Emitter, error) {
	switch format {
	case "json", "":
		return &JSONEmitter{}, nil
	case "yaml", "yml":
		return &YAMLEmitter{}, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
