package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_JoinURL(t *testing.T) {
	require.Equal(t, "http://192.168.1.7:5000/", JoinURL("192.168.1.7", "5000"))
}
