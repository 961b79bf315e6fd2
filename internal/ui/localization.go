package ui

import (
	"os"
	"strings"

	"github.com/wallpanel/wallpanel/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Languages
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangChinese = "zh"
)

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySearch              = "search"
	KeySearchPlaceholder   = "search_placeholder"
	KeyPlayPause           = "play_pause"
	KeyNextTrack           = "next_track"
	KeyPreviousTrack       = "previous_track"
	KeyMusic               = "music"
	KeyMemos               = "memos"
	KeySettings            = "settings"
	KeyNotesPlaceholder    = "notes_placeholder"
	KeyShow                = "show"
	KeyQuit                = "quit"
	KeyNoBattery           = "no_battery"
	KeyMemoTitle           = "memo_title"
	KeyMemoContent         = "memo_content"
	KeyMemoReminder        = "memo_reminder"
	KeyReminderPlaceholder = "reminder_placeholder"
	KeyAdd                 = "add"
	KeyUpdate              = "update"
	KeyDelete              = "delete"
	KeyResetReminder       = "reset_reminder"
	KeyClose               = "close"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyReminder            = "reminder"
	KeyPending             = model.StatusPending
	KeyReminded            = model.StatusReminded
	KeyReminderTitle       = "reminder_title"
	KeyAdvanceTitle        = "advance_title"
	KeyAdvanceBody         = "advance_body"
	KeySnooze              = "snooze"
	KeyDismiss             = "dismiss"
	KeyReminderSettings    = "reminder_settings"
	KeyAdvanceMinutes      = "advance_minutes"
	KeyEnableSound         = "enable_sound"
	KeyEnablePopup         = "enable_popup"
	KeySettingsSaved       = "settings_saved"
	KeyInvalidReminder     = "invalid_reminder"
	KeySelectMemo          = "select_memo"
	KeyError               = "error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage maps the POSIX locale variables to a supported language
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if strings.HasPrefix(strings.ToLower(v), LangChinese) {
				return LangChinese
			}
			return LangEnglish
		}
	}
	return LangEnglish
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangChinese: "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:            "WallPanel",
		KeySearch:              "Search",
		KeySearchPlaceholder:   "Search...",
		KeyPlayPause:           "Play/Pause",
		KeyNextTrack:           "Next",
		KeyPreviousTrack:       "Previous",
		KeyMusic:               "Music",
		KeyMemos:               "Memos",
		KeySettings:            "Settings",
		KeyNotesPlaceholder:    "Notes...",
		KeyShow:                "Show panel",
		KeyQuit:                "Quit",
		KeyNoBattery:           "AC",
		KeyMemoTitle:           "Title",
		KeyMemoContent:         "Content",
		KeyMemoReminder:        "Reminder time",
		KeyReminderPlaceholder: "YYYY-MM-DD HH:MM (optional)",
		KeyAdd:                 "Add",
		KeyUpdate:              "Update",
		KeyDelete:              "Delete",
		KeyResetReminder:       "Reset reminder",
		KeyClose:               "Close",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyReminder:            "reminder",
		KeyPending:             "pending",
		KeyReminded:            "reminded",
		KeyReminderTitle:       "Reminder",
		KeyAdvanceTitle:        "Upcoming reminder",
		KeyAdvanceBody:         "%d minutes until reminder",
		KeySnooze:              "Snooze 5 min",
		KeyDismiss:             "Dismiss",
		KeyReminderSettings:    "Reminder settings",
		KeyAdvanceMinutes:      "Remind %d minutes ahead",
		KeyEnableSound:         "Play sound",
		KeyEnablePopup:         "Show popup",
		KeySettingsSaved:       "Settings saved",
		KeyInvalidReminder:     "Invalid reminder time",
		KeySelectMemo:          "Select a memo first",
		KeyError:               "Error",
	}

	l.texts[LangChinese] = map[string]string{
		KeyAppTitle:            "桌面面板",
		KeySearch:              "搜索",
		KeySearchPlaceholder:   "搜索...",
		KeyPlayPause:           "播放/暂停",
		KeyNextTrack:           "下一首",
		KeyPreviousTrack:       "上一首",
		KeyMusic:               "音乐",
		KeyMemos:               "备忘录",
		KeySettings:            "设置",
		KeyNotesPlaceholder:    "便签...",
		KeyShow:                "显示面板",
		KeyQuit:                "退出",
		KeyNoBattery:           "电源",
		KeyMemoTitle:           "标题",
		KeyMemoContent:         "内容",
		KeyMemoReminder:        "提醒时间",
		KeyReminderPlaceholder: "YYYY-MM-DD HH:MM（可选）",
		KeyAdd:                 "添加",
		KeyUpdate:              "更新",
		KeyDelete:              "删除",
		KeyResetReminder:       "重置提醒",
		KeyClose:               "关闭",
		KeySave:                "保存",
		KeyCancel:              "取消",
		KeyReminder:            "提醒",
		KeyPending:             "待提醒",
		KeyReminded:            "已提醒",
		KeyReminderTitle:       "备忘录提醒",
		KeyAdvanceTitle:        "即将提醒",
		KeyAdvanceBody:         "距离提醒还有 %d 分钟",
		KeySnooze:              "稍后提醒(5分钟)",
		KeyDismiss:             "知道了",
		KeyReminderSettings:    "提醒设置",
		KeyAdvanceMinutes:      "提前 %d 分钟提醒",
		KeyEnableSound:         "提醒声音",
		KeyEnablePopup:         "弹窗提醒",
		KeySettingsSaved:       "设置已保存",
		KeyInvalidReminder:     "提醒时间格式错误",
		KeySelectMemo:          "请先选择备忘录",
		KeyError:               "错误",
	}
}
