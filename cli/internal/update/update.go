package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/hashicorp/go-version"

	"github.com/satishbabariya/classql/cli/internal/ui"
)

const releaseURL = "https://api.github.com/repos/satishbabariya/classql/releases/latest"

// CheckForUpdates checks if a newer version is available
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latestVersionStr, err := fetchLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	latest, err := version.NewVersion(latestVersionStr)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestVersionStr)
		fmt.Printf("\nUpdate with: go install github.com/satishbabariya/classql/cli@latest\n")
		return nil
	}

	ui.PrintSuccess("You are on the latest version (%s)", currentVersion)
	return nil
}

// fetchLatestVersion asks GitHub for the newest release tag.
func fetchLatestVersion() (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(releaseURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", fmt.Errorf("release has no tag name")
	}

	// Tags carry a leading v.
	if release.TagName[0] == 'v' {
		return release.TagName[1:], nil
	}
	return release.TagName, nil
}

// GetDownloadURL returns the download URL for the current platform
func GetDownloadURL(version string) string {
	os := runtime.GOOS
	arch := runtime.GOARCH

	return fmt.Sprintf("https://github.com/satishbabariya/classql/releases/download/v%s/classql-%s-%s", version, os, arch)
}
