package token_api

import "testing"

func TestNothing(t *testing.T) {}
