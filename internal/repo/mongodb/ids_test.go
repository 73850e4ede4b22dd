package mongodb

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseObjectID(t *testing.T) {
	valid := bson.NewObjectID()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"round trip", valid.Hex(), false},
		{"empty", "", true},
		{"short", "abc123", true},
		{"right length wrong chars", "zzzzzzzzzzzzzzzzzzzzzzzz", true},
		{"whitespace", "                        ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := parseObjectID(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}

				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("expected ErrInvalidID, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if oid != valid {
				t.Errorf("expected %s back, got %s", valid.Hex(), oid.Hex())
			}
		})
	}
}
