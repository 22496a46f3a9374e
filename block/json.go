package block

import (
	"encoding/json"
	"fmt"
	"io"
)

// Wire shape of the platform's pre-parsed block dump: blockName is null for
// freeform nodes, and innerContent entries are either literal markup
// fragments or null markers holding the position of the next inner block.

type blockJSON struct {
	BlockName    *string        `json:"blockName"`
	Attrs        map[string]any `json:"attrs"`
	InnerBlocks  []*Block       `json:"innerBlocks"`
	InnerHTML    string         `json:"innerHTML"`
	InnerContent []*string      `json:"innerContent"`
}

func (b *Block) MarshalJSON() ([]byte, error) {
	aux := &blockJSON{
		Attrs:        b.Attrs,
		InnerBlocks:  b.InnerBlocks,
		InnerHTML:    b.InnerHTML,
		InnerContent: b.InnerContent,
	}
	if b.Name != "" {
		aux.BlockName = &b.Name
	}
	// the platform dump always carries these keys
	if aux.Attrs == nil {
		aux.Attrs = map[string]any{}
	}
	if aux.InnerBlocks == nil {
		aux.InnerBlocks = []*Block{}
	}
	if aux.InnerContent == nil {
		aux.InnerContent = []*string{}
	}
	return json.Marshal(aux)
}

func (b *Block) UnmarshalJSON(d []byte) error {
	aux := &blockJSON{}
	if err := json.Unmarshal(d, aux); err != nil {
		return err
	}
	b.Name = ""
	if aux.BlockName != nil {
		b.Name = *aux.BlockName
	}
	b.Attrs = aux.Attrs
	if len(b.Attrs) == 0 {
		b.Attrs = nil
	}
	b.InnerBlocks = aux.InnerBlocks
	if len(b.InnerBlocks) == 0 {
		b.InnerBlocks = nil
	}
	b.InnerHTML = aux.InnerHTML
	b.InnerContent = aux.InnerContent
	if len(b.InnerContent) == 0 {
		b.InnerContent = nil
	}
	return nil
}

// Decode reads a JSON array of blocks, the platform's dump of one parsed
// document.
func Decode(r io.Reader) ([]*Block, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(d)
}

func DecodeBytes(d []byte) ([]*Block, error) {
	var blocks []*Block
	if err := json.Unmarshal(d, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding block list: %w", err)
	}
	return blocks, nil
}

// Encode writes blocks as a JSON array in the dump shape.
func Encode(w io.Writer, blocks []*Block) error {
	if blocks == nil {
		blocks = []*Block{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(blocks)
}
