package util

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes caps the size of a single download.
const MaxBodyBytes = 20 << 20

func GetBytes(url string) ([]byte, error) {
	client := http.Client{Timeout: 12 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
}
