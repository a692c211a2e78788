package oda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDXFVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "ACAD2018", want: "ACAD2018"},
		{input: "acad2007", want: "ACAD2007"},
		{input: "AC1015", want: "ACAD2000"},
		{input: "ac1018", want: "ACAD2004"},
		{input: " AC1021 ", want: "ACAD2007"},
		{input: "AC1024", want: "ACAD2010"},
		{input: "AC1027", want: "ACAD2013"},
		{input: "AC1032", want: "ACAD2018"},
		{input: "", want: "ACAD2018"},
		{input: "R12", want: "ACAD2018"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDXFVersion(tt.input))
		})
	}
}

func TestArgs(t *testing.T) {
	args := Args(ConvertConfig{
		Exe:        "ODAFileConverter",
		InputDir:   "/tmp/in",
		OutputDir:  "/tmp/out",
		DXFVersion: "AC1032",
	})

	assert.Equal(t, []string{"/tmp/in", "/tmp/out", "ACAD2018", "DXF", "0", "0", "*.DWG"}, args)
}
