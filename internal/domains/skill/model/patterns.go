package model

import "regexp"

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
