package models

import "fmt"

// Quote is one entry of the quote corpus
type Quote struct {
	Text   string `yaml:"text" json:"text"`
	Author string `yaml:"author" json:"author"`
}

// Format renders the quote the way the card inserts it into the text buffer
func (q Quote) Format() string {
	return fmt.Sprintf("「%s」 - %s", q.Text, q.Author)
}

// BlockExport is the serializable form of a block for the split command
type BlockExport struct {
	Index  int    `yaml:"index" json:"index"`
	Length int    `yaml:"length" json:"length"`
	Text   string `yaml:"text" json:"text"`
}
