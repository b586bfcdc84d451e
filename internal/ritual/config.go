package ritual

import (
	"path/filepath"

	"tasker-bot/internal/model"
)

// Prompt is what gets sent when a ritual fires.
type Prompt struct {
	Text      string
	ImagePath string
}

// Config carries the ritual prompts and the mood-level reply texts.
type Config struct {
	Morning         Prompt
	Evening         Prompt
	MoodInstruction string
	morningReplies  map[int]string
	eveningReplies  map[int]string
}

// PromptFor returns the prompt for the given ritual type.
func (c Config) PromptFor(ritual model.RitualType) Prompt {
	if ritual == model.RitualEvening {
		return c.Evening
	}
	return c.Morning
}

// ReplyFor returns the response text for a logged mood level.
func (c Config) ReplyFor(ritual model.RitualType, level int) string {
	replies := c.morningReplies
	if ritual == model.RitualEvening {
		replies = c.eveningReplies
	}
	if text, ok := replies[level]; ok {
		return text
	}
	return "Спасибо, записал! 📝"
}

// DefaultConfig returns the production ritual texts. imageDir points to
// the directory with the ritual illustrations.
func DefaultConfig(imageDir string) Config {
	return Config{
		Morning: Prompt{
			Text:      "🌅 Доброе утро!\n\nВремя утреннего ритуала: сделай пару глубоких вдохов, выпей стакан воды и подумай о главной задаче на сегодня.",
			ImagePath: filepath.Join(imageDir, "morning.jpg"),
		},
		Evening: Prompt{
			Text:      "🌙 Добрый вечер!\n\nВремя вечернего ритуала: отложи дела, вспомни, что сегодня получилось, и поблагодари себя за день.",
			ImagePath: filepath.Join(imageDir, "evening.jpg"),
		},
		MoodInstruction: "Оцени своё самочувствие по шкале от 1 до 7, где 1 — совсем плохо, а 7 — отлично. Просто отправь цифру в ответ.",
		morningReplies: map[int]string{
			1: "Держись! 🤗 День только начинается, и он может всё изменить. Начни с самого маленького шага.",
			2: "Бывает тяжело по утрам. Попробуй начать с чего-то приятного — это задаст тон дню.",
			3: "Спокойное утро — тоже хорошее утро. Выбери одну задачу и сфокусируйся на ней.",
			4: "Неплохой старт! Ровная энергия — отличная база для продуктивного дня.",
			5: "Хорошее утро! 💪 Используй этот настрой для самой важной задачи.",
			6: "Отличное начало дня! Сегодня явно получится многое.",
			7: "Прекрасно! 🔥 С такой энергией тебе всё по плечу. Вперёд!",
		},
		eveningReplies: map[int]string{
			1: "Тяжёлый день позади. 🤗 Отдохни как следует — завтра будет легче.",
			2: "День был непростым. Позволь себе выдохнуть и не требуй от себя большего сегодня.",
			3: "Обычный день — это тоже результат. Отдыхай со спокойной душой.",
			4: "Ровный день. Отметь для себя, что получилось, и отпусти остальное.",
			5: "Хороший день! Ты славно поработал — время восстановиться.",
			6: "Отличный день! 🎉 Запомни это ощущение и возвращайся к нему.",
			7: "Великолепный день! 🔥 Гордись собой и хорошенько выспись.",
		},
	}
}
