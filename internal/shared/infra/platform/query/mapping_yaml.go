package query

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Documento YAML de tablas de campos:
//
//	mappings:
//	  - source: Coin
//	    destination: CoinView
//	    fields:
//	      country: { paths: [Country.Name] }
//	      age:     { paths: [Year], reverse: true }
type mappingDocument struct {
	Mappings []tableDocument `yaml:"mappings"`
}

type tableDocument struct {
	Source      string                   `yaml:"source"`
	Destination string                   `yaml:"destination"`
	Fields      map[string]entryDocument `yaml:"fields"`
}

type entryDocument struct {
	Paths   []string `yaml:"paths"`
	Reverse bool     `yaml:"reverse"`
}

// TypeIndex indexa tipos por su nombre corto para resolver el documento.
func TypeIndex(types ...reflect.Type) map[string]reflect.Type {
	idx := make(map[string]reflect.Type, len(types))
	for _, t := range types {
		idx[derefType(t).Name()] = t
	}
	return idx
}

// ParseMappings construye un Registry a partir del documento YAML. Cualquier
// error (tipo desconocido, ruta inválida, par duplicado) es fatal en el arranque.
func ParseMappings(data []byte, types map[string]reflect.Type) (*Registry, error) {
	var doc mappingDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse field mappings: %w", err)
	}

	reg := NewRegistry()
	for _, td := range doc.Mappings {
		src, ok := types[td.Source]
		if !ok {
			return nil, fmt.Errorf("field mappings: unknown source type %q", td.Source)
		}
		dst, ok := types[td.Destination]
		if !ok {
			return nil, fmt.Errorf("field mappings: unknown destination type %q", td.Destination)
		}

		entries := make(map[string]FieldMappingEntry, len(td.Fields))
		for name, e := range td.Fields {
			entries[name] = FieldMappingEntry{DestinationPaths: e.Paths, Reverse: e.Reverse}
		}
		table, err := NewFieldMappingTable(entries)
		if err != nil {
			return nil, fmt.Errorf("field mappings %s -> %s: %w", td.Source, td.Destination, err)
		}
		if err := reg.Register(MappingKey{Source: src, Destination: dst}, table); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
