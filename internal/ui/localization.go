package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySourceFolder       = "source_folder"
	KeyBrowse             = "browse"
	KeyMode               = "mode"
	KeyAction             = "action"
	KeyConflictPolicy     = "conflict_policy"
	KeyRecursive          = "recursive"
	KeyDryRun             = "dry_run"
	KeyRun                = "run"
	KeyCancel             = "cancel"
	KeySettings           = "settings"
	KeyOpenResult         = "open_result"
	KeyLogOutput          = "log_output"
	KeyStarting           = "starting"
	KeyDone               = "done"
	KeyStopped            = "stopped"
	KeyError              = "error"
	KeyPleaseSelectSource = "please_select_source"
	KeyRunInProgress      = "run_in_progress"
	KeySettingsSaved      = "settings_saved"
	KeyLanguage           = "language"
	KeyDefaultAction      = "default_action"
	KeyDefaultConflict    = "default_conflict"
	KeyAutoOpen           = "auto_open"
	KeySave               = "save"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
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
		"en": "English",
		"ar": "العربية",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "File Organizer",
		KeySourceFolder:       "Source Folder:",
		KeyBrowse:             "Browse",
		KeyMode:               "Mode:",
		KeyAction:             "Action:",
		KeyConflictPolicy:     "Conflict Policy:",
		KeyRecursive:          "Recursive",
		KeyDryRun:             "Dry-run",
		KeyRun:                "Run Organizer",
		KeyCancel:             "Cancel",
		KeySettings:           "Settings",
		KeyOpenResult:         "Open Result",
		KeyLogOutput:          "Log Output:",
		KeyStarting:           "Starting...",
		KeyDone:               "Done",
		KeyStopped:            "Stopped",
		KeyError:              "Error",
		KeyPleaseSelectSource: "Please select a source folder",
		KeyRunInProgress:      "A run is already in progress",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyLanguage:           "Language",
		KeyDefaultAction:      "Default Action",
		KeyDefaultConflict:    "Default Conflict Policy",
		KeyAutoOpen:           "Open result when finished",
		KeySave:               "Save",
	}

	// Arabic texts
	l.texts["ar"] = map[string]string{
		KeyAppTitle:           "منظم الملفات",
		KeySourceFolder:       "مجلد المصدر:",
		KeyBrowse:             "استعراض",
		KeyMode:               "الوضع:",
		KeyAction:             "الإجراء:",
		KeyConflictPolicy:     "سياسة التعارض:",
		KeyRecursive:          "شامل المجلدات الفرعية",
		KeyDryRun:             "محاكاة فقط",
		KeyRun:                "تشغيل المنظم",
		KeyCancel:             "إيقاف",
		KeySettings:           "الإعدادات",
		KeyOpenResult:         "فتح النتيجة",
		KeyLogOutput:          "سجل العمليات:",
		KeyStarting:           "جارٍ البدء...",
		KeyDone:               "اكتمل",
		KeyStopped:            "تم الإيقاف",
		KeyError:              "خطأ",
		KeyPleaseSelectSource: "يرجى اختيار مجلد المصدر",
		KeyRunInProgress:      "هناك عملية قيد التنفيذ بالفعل",
		KeySettingsSaved:      "تم حفظ الإعدادات بنجاح!",
		KeyLanguage:           "اللغة",
		KeyDefaultAction:      "الإجراء الافتراضي",
		KeyDefaultConflict:    "سياسة التعارض الافتراضية",
		KeyAutoOpen:           "فتح النتيجة عند الانتهاء",
		KeySave:               "حفظ",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Органайзер файлов",
		KeySourceFolder:       "Исходная папка:",
		KeyBrowse:             "Обзор",
		KeyMode:               "Режим:",
		KeyAction:             "Действие:",
		KeyConflictPolicy:     "Политика конфликтов:",
		KeyRecursive:          "Включая подпапки",
		KeyDryRun:             "Только симуляция",
		KeyRun:                "Запустить",
		KeyCancel:             "Отмена",
		KeySettings:           "Настройки",
		KeyOpenResult:         "Открыть результат",
		KeyLogOutput:          "Журнал:",
		KeyStarting:           "Запуск...",
		KeyDone:               "Готово",
		KeyStopped:            "Остановлено",
		KeyError:              "Ошибка",
		KeyPleaseSelectSource: "Пожалуйста, выберите исходную папку",
		KeyRunInProgress:      "Запуск уже выполняется",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyLanguage:           "Язык",
		KeyDefaultAction:      "Действие по умолчанию",
		KeyDefaultConflict:    "Политика конфликтов по умолчанию",
		KeyAutoOpen:           "Открывать результат по завершении",
		KeySave:               "Сохранить",
	}
}
