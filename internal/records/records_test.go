package records

import (
	"errors"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantRows int
		wantErr  error
	}{
		{
			name:     "simple",
			input:    "first_name,last_name\nAda,Lovelace\nGrace,Hopper\n",
			wantRows: 2,
		},
		{
			name:     "ragged rows tolerated",
			input:    "first_name,last_name\nAda\nGrace,Hopper,extra\n",
			wantRows: 2,
		},
		{
			name:     "quoted fields",
			input:    "name\n\"O'Brien, Patrick\"\n",
			wantRows: 1,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "header only",
			input:   "first_name,last_name\n",
			wantErr: ErrNoDataRows,
		},
		{
			name:    "malformed quoting",
			input:   "name\n\"unterminated\n",
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table, err := Read(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Read() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if len(table.Rows) != tt.wantRows {
				t.Errorf("got %d rows, want %d", len(table.Rows), tt.wantRows)
			}
		})
	}
}

func TestRead_ShortRowLeavesFieldEmpty(t *testing.T) {
	t.Parallel()

	table, err := Read(strings.NewReader("first_name,last_name\nAda\n"))
	if err != nil {
		t.Fatal(err)
	}

	row := table.Rows[0]
	if row["first_name"] != "Ada" {
		t.Errorf("first_name = %q, want %q", row["first_name"], "Ada")
	}
	if row["last_name"] != "" {
		t.Errorf("last_name = %q, want empty", row["last_name"])
	}
}

func TestTable_HasField(t *testing.T) {
	t.Parallel()

	table, err := Read(strings.NewReader("first_name,email\nAda,ada@example.com\n"))
	if err != nil {
		t.Fatal(err)
	}

	if !table.HasField("first_name") {
		t.Error("HasField(first_name) = false")
	}
	if table.HasField("last_name") {
		t.Error("HasField(last_name) = true")
	}
}

func TestTable_Texts(t *testing.T) {
	t.Parallel()

	input := "first_name,last_name\n" +
		"Ada,Lovelace\n" +
		"  Grace  ,Hopper\n" + // surrounding whitespace trimmed
		",Nobody\n" + // empty value skipped
		"   ,Spaces\n" + // whitespace-only value skipped
		"Katherine,Johnson\n"

	table, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	texts, err := table.Texts("first_name")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Ada", "Grace", "Katherine"}
	if len(texts) != len(want) {
		t.Fatalf("got %d texts %v, want %v", len(texts), texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestTable_TextsMissingField(t *testing.T) {
	t.Parallel()

	table, err := Read(strings.NewReader("first_name,last_name\nAda,Lovelace\n"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = table.Texts("middle_name")
	if !errors.Is(err, ErrFieldMissing) {
		t.Fatalf("error = %v, want ErrFieldMissing", err)
	}
	// The message lists the available columns to help fix the config.
	if !strings.Contains(err.Error(), "first_name") {
		t.Errorf("error %q does not name available columns", err)
	}
}
