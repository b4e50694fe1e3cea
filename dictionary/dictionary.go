// Package dictionary builds a runtime catalog mapping Diameter AVP
// (code, vendor-id) pairs to their value type, display name, and M-flag
// default, merged from one or more XML (or YAML) sources.
package dictionary

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/diametrix/diameter/avp"
)

// Entry is one resolved dictionary record.
type Entry struct {
	Code      uint32
	VendorID  uint32
	Name      string
	Type      avp.DataType
	Mandatory bool
}

// Dictionary is an immutable-after-construction catalog, safe to share by
// pointer across goroutines since nothing mutates it once New/NewFromYAML
// returns.
type Dictionary struct {
	byCode map[[2]uint32]Entry
	byName map[string]Entry
}

func empty() *Dictionary {
	return &Dictionary{byCode: map[[2]uint32]Entry{}, byName: map[string]Entry{}}
}

// New parses each XML source in order and merges their <avp> entries,
// keyed by (code, vendor-id); a later source's entry for the same key
// replaces an earlier one.
func New(sources ...string) (*Dictionary, error) {
	d := empty()
	for _, src := range sources {
		if err := d.mergeXML(src); err != nil {
			return nil, err
		}
	}
	return d, nil
}

type xmlDiameter struct {
	XMLName      xml.Name         `xml:"diameter"`
	Applications []xmlApplication `xml:"application"`
}

type xmlApplication struct {
	ID   string   `xml:"id,attr"`
	Name string   `xml:"name,attr"`
	AVPs []xmlAVP `xml:"avp"`
}

type xmlAVP struct {
	Name     string  `xml:"name,attr"`
	Code     uint32  `xml:"code,attr"`
	VendorID uint32  `xml:"vendor-id,attr"`
	Must     string  `xml:"must,attr"`
	Data     xmlData `xml:"data"`
}

type xmlData struct {
	Type string `xml:"type,attr"`
}

func (d *Dictionary) mergeXML(source string) error {
	var doc xmlDiameter
	if err := xml.Unmarshal([]byte(source), &doc); err != nil {
		return fmt.Errorf("dictionary: parse XML: %w", err)
	}
	for _, app := range doc.Applications {
		for _, a := range app.AVPs {
			d.insert(Entry{
				Code:      a.Code,
				VendorID:  a.VendorID,
				Name:      a.Name,
				Type:      avp.DataTypeByName(a.Data.Type),
				Mandatory: strings.Contains(a.Must, "M"),
			})
		}
	}
	return nil
}

func (d *Dictionary) insert(e Entry) {
	key := [2]uint32{e.Code, e.VendorID}
	if old, ok := d.byCode[key]; ok {
		if cur, ok := d.byName[old.Name]; ok && cur.Code == old.Code && cur.VendorID == old.VendorID {
			delete(d.byName, old.Name)
		}
	}
	d.byCode[key] = e
	d.byName[e.Name] = e
}

// AVPType resolves an AVP's wire (code, vendor-id) pair to its value type.
func (d *Dictionary) AVPType(code, vendorID uint32) (avp.DataType, bool) {
	e, ok := d.byCode[[2]uint32{code, vendorID}]
	if !ok {
		return avp.Unknown, false
	}
	return e.Type, true
}

// AVPName resolves an AVP's wire (code, vendor-id) pair to its display name.
func (d *Dictionary) AVPName(code, vendorID uint32) (string, bool) {
	e, ok := d.byCode[[2]uint32{code, vendorID}]
	if !ok {
		return "", false
	}
	return e.Name, true
}

// AVPByName looks up an AVP's (code, vendor-id, M-flag default) by its
// dictionary name. Linear-search-shaped but backed by a map since name
// lookups are rare relative to code lookups.
func (d *Dictionary) AVPByName(name string) (code, vendorID uint32, mandatory bool, ok bool) {
	e, found := d.byName[name]
	if !found {
		return 0, 0, false, false
	}
	return e.Code, e.VendorID, e.Mandatory, true
}
