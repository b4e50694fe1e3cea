package dictionary

import (
	"fmt"
	"strings"

	"github.com/diametrix/diameter/avp"
	"gopkg.in/yaml.v2"
)

// NewFromYAML builds a Dictionary from one or more YAML sources, an
// operator-friendly alternative authoring format to the XML schema that
// shares the same merge-by-(code,vendor-id) semantics.
//
// Schema:
//
//	avps:
//	  - name: Session-Id
//	    code: 263
//	    vendor-id: 0
//	    must: M
//	    type: UTF8String
func NewFromYAML(sources ...string) (*Dictionary, error) {
	d := empty()
	for _, src := range sources {
		if err := d.mergeYAML(src); err != nil {
			return nil, err
		}
	}
	return d, nil
}

type yamlDoc struct {
	AVPs []yamlAVP `yaml:"avps"`
}

type yamlAVP struct {
	Name     string `yaml:"name"`
	Code     uint32 `yaml:"code"`
	VendorID uint32 `yaml:"vendor-id"`
	Must     string `yaml:"must"`
	Type     string `yaml:"type"`
}

func (d *Dictionary) mergeYAML(source string) error {
	var doc yamlDoc
	if err := yaml.Unmarshal([]byte(source), &doc); err != nil {
		return fmt.Errorf("dictionary: parse YAML: %w", err)
	}
	for _, a := range doc.AVPs {
		d.insert(Entry{
			Code:      a.Code,
			VendorID:  a.VendorID,
			Name:      a.Name,
			Type:      avp.DataTypeByName(a.Type),
			Mandatory: strings.Contains(a.Must, "M"),
		})
	}
	return nil
}

// MergeYAML extends an existing dictionary with another YAML source,
// last-wins on any overlapping (code, vendor-id) keys.
func (d *Dictionary) MergeYAML(source string) error {
	return d.mergeYAML(source)
}

// MergeXML extends an existing dictionary with another XML source,
// last-wins on any overlapping (code, vendor-id) keys.
func (d *Dictionary) MergeXML(source string) error {
	return d.mergeXML(source)
}
