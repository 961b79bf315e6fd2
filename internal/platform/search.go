package platform

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/wallpanel/wallpanel/internal/logging"
	"github.com/wallpanel/wallpanel/internal/model"
)

// EverythingSearchFlag is the Everything command-line search switch
const EverythingSearchFlag = "-search"

// searchURLTemplates map web engines to their query URL; %s is the escaped query
var searchURLTemplates = map[string]string{
	model.SearchBing:     "https://www.bing.com/search?q=%s",
	model.SearchChatGPT:  "https://chat.openai.com/?q=%s",
	model.SearchBilibili: "https://search.bilibili.com/all?keyword=%s",
}

// IsLocalEngine reports whether engine searches the local file index
func IsLocalEngine(engine string) bool {
	return engine == model.SearchEverything
}

// BuildSearchURL returns the query URL for a web engine
func BuildSearchURL(engine, query string) (string, error) {
	tmpl, ok := searchURLTemplates[engine]
	if !ok {
		return "", fmt.Errorf("unknown search engine: %s", engine)
	}
	return fmt.Sprintf(tmpl, url.QueryEscape(query)), nil
}

// Search dispatches query to the given engine. The local engine launches the
// Everything executable; web engines open in the configured browser, falling
// back to the system default. An empty query does nothing.
func Search(settings *model.Settings, engine, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if engine == "" {
		engine = settings.DefaultSearchEngine
	}

	if IsLocalEngine(engine) {
		return LaunchDetached(settings.EverythingPath, EverythingSearchFlag, query)
	}

	target, err := BuildSearchURL(engine, query)
	if err != nil {
		return err
	}
	return openInBrowser(settings.BrowserPath, target)
}

func openInBrowser(browserPath, target string) error {
	if browserPath != "" {
		if _, err := os.Stat(browserPath); err == nil {
			err := LaunchDetached(browserPath, target)
			if err == nil {
				return nil
			}
			logging.Warnf("Browser %s failed, using system default: %v", browserPath, err)
		}
	}
	return OpenURL(target)
}
