// Package codec reads and writes IR nodes as files, dispatching on
// the file name suffix (.psd1, .ps1, .json, .yaml, .yml).
package codec
