package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeDetails(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		expected  Details
	}{
		{
			name:      "no fragments",
			fragments: nil,
			expected:  Details{},
		},
		{
			name:      "single fragment without delimiter",
			fragments: []string{"Acme Corp"},
			expected:  Details{Organization: "Acme Corp"},
		},
		{
			name:      "single fragment with delimiter",
			fragments: []string{"Acme Corp · Full-time"},
			expected:  Details{Organization: "Acme Corp", Position: "Full-time"},
		},
		{
			name:      "split happens on first delimiter only",
			fragments: []string{"Acme Corp · Full-time · Hybrid"},
			expected:  Details{Organization: "Acme Corp", Position: "Full-time · Hybrid"},
		},
		{
			name:      "two fragments",
			fragments: []string{"Acme Corp · Part-time", "Jan 2020 - Mar 2022"},
			expected: Details{
				Organization: "Acme Corp",
				Position:     "Part-time",
				DateRange:    "Jan 2020 - Mar 2022",
			},
		},
		{
			name:      "three fragments",
			fragments: []string{"Acme Corp", "2020 - 2022", "Lyon, France"},
			expected: Details{
				Organization: "Acme Corp",
				DateRange:    "2020 - 2022",
				Location:     "Lyon, France",
			},
		},
		{
			name:      "fragments beyond index 2 are ignored",
			fragments: []string{"Acme Corp", "2020 - 2022", "Lyon, France", "extra", "more"},
			expected: Details{
				Organization: "Acme Corp",
				DateRange:    "2020 - 2022",
				Location:     "Lyon, France",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecomposeDetails(tt.fragments))
		})
	}
}

func TestDecomposeDescriptionSkills(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		expected  DescriptionSkills
	}{
		{
			name:      "no fragments",
			fragments: nil,
			expected:  DescriptionSkills{},
		},
		{
			name:      "lone fragment is the skills list",
			fragments: []string{"Go · Docker · Kubernetes"},
			expected:  DescriptionSkills{Skills: "Go · Docker · Kubernetes"},
		},
		{
			name:      "two fragments",
			fragments: []string{"Built the data plane.", "Go · gRPC"},
			expected:  DescriptionSkills{Description: "Built the data plane.", Skills: "Go · gRPC"},
		},
		{
			name:      "middle fragments are discarded",
			fragments: []string{"Built the data plane.", "ignored", "also ignored", "Go · gRPC"},
			expected:  DescriptionSkills{Description: "Built the data plane.", Skills: "Go · gRPC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecomposeDescriptionSkills(tt.fragments))
		})
	}
}

// Pure functions: repeated decomposition of the same input is identical.
func TestDecomposeIdempotence(t *testing.T) {
	fragments := []string{"Acme Corp · Full-time", "2021 - 2023", "Remote"}
	first := DecomposeDetails(fragments)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DecomposeDetails(fragments))
	}

	dsFragments := []string{"desc", "mid", "skills"}
	firstDS := DecomposeDescriptionSkills(dsFragments)
	for i := 0; i < 5; i++ {
		assert.Equal(t, firstDS, DecomposeDescriptionSkills(dsFragments))
	}
}
