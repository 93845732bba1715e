// Package locale holds the user-facing labels and messages in English and French.
package locale

import (
	"strings"
	"time"
)

type Locale string

const (
	English Locale = "en"
	French  Locale = "fr"
)

func Parse(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case French:
		return French, true
	}
	return English, false
}

type Operation string

const (
	OpLoad   Operation = "load"
	OpSave   Operation = "save"
	OpDelete Operation = "delete"
)

type MessageKey string

const (
	MsgLoginRequired MessageKey = "login_required"
	MsgInvalidImage  MessageKey = "invalid_image"
	MsgImageTooLarge MessageKey = "image_too_large"
	MsgConfirmDelete MessageKey = "confirm_delete"
	MsgInvalidID     MessageKey = "invalid_id"
	MsgSignedOut     MessageKey = "signed_out"
)

type Catalog struct {
	labels   map[string]string
	months   [12]string
	messages map[MessageKey]string
	// entity -> phrase per operation
	operations map[string]map[Operation]string
	// entity -> "this client"
	this map[string]string
	// sheet -> header row
	columns map[string][]string
}

var catalogs = map[Locale]*Catalog{
	English: english,
	French:  french,
}

func For(l Locale) *Catalog {
	if c, ok := catalogs[l]; ok {
		return c
	}
	return english
}

// Label translates a status or category value; unknown values are returned as is.
func (c *Catalog) Label(value string) string {
	if l, ok := c.labels[value]; ok {
		return l
	}
	return value
}

func (c *Catalog) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return c.months[m-1]
}

func (c *Catalog) Message(key MessageKey) string {
	if m, ok := c.messages[key]; ok {
		return m
	}
	return string(key)
}

// Describe names a failed operation, e.g. "Error saving client".
func (c *Catalog) Describe(entity string, op Operation) string {
	if ops, ok := c.operations[entity]; ok {
		if d, ok := ops[op]; ok {
			return d
		}
	}
	return c.Message(MessageKey(string(op) + "_failed"))
}

// Columns returns the header row of an exported sheet.
func (c *Catalog) Columns(sheet string) []string {
	return c.columns[sheet]
}

// ConfirmDelete is the prompt a delete must be confirmed against.
func (c *Catalog) ConfirmDelete(entity string) string {
	if t, ok := c.this[entity]; ok {
		return c.Message(MsgConfirmDelete) + " " + t + "?"
	}
	return c.Message(MsgConfirmDelete) + "?"
}
