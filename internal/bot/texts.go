package bot

// User-visible reply texts. Short corrective messages only: raw errors
// never reach the chat.

const fallbackName = "друг"

const textGreeting = `Привет, %s! 👋

Этот таскер бот поможет держать твое ментальное состояние в балансе, повышая продуктивность и отслеживая рабочие и личные задачи.

Давай настроим время утреннего ритуала.
Укажи время в формате ЧЧ:ММ (например, 08:00)`

const textBadTimeMorning = "⚠️ Неверный формат времени.\n" +
	"Пожалуйста, укажи время в формате ЧЧ:ММ (например, 08:00)"

const textBadTimeEvening = "⚠️ Неверный формат времени.\n" +
	"Пожалуйста, укажи время в формате ЧЧ:ММ (например, 21:00)"

const textMorningSaved = "✅ Отлично! Утренний ритуал настроен.\n\n" +
	"Теперь давай настроим время вечернего ритуала.\n" +
	"Укажи время в формате ЧЧ:ММ (например, 21:00)"

const textOnboardingDone = "✅ Отлично! Вечерний ритуал настроен.\n\n" +
	"🎉 Настройка завершена!\n\n" +
	"Я буду спрашивать о твоем самочувствии в указанное время.\n" +
	"Используй /помощь чтобы узнать о доступных командах."

const textNoActiveTasks = "📝 У вас нет активных задач"

const textNoArchivedTasks = "🗄 В архиве пока пусто"

const textCompleteUsage = "⚠️ Неверный формат команды\n" +
	"Используйте: /готово {id задачи}\n" +
	"Например: /готово 5"

const textArchiveUsage = "⚠️ Неверный формат команды\n" +
	"Используйте: /в_архив {id задачи}\n" +
	"Например: /в_архив 5"

const textCreateUsage = "⚠️ Описание задачи не может быть пустым\n" +
	"Используйте: /создать {название задачи}\n" +
	"Например: /создать Написать отчет"

const textMoodRange = "⚠️ Пожалуйста, укажи число от 1 до 7"

const textUnknownCommand = "⚠️ Неизвестная команда\n" +
	"Используйте /помощь для просмотра доступных команд"

const textGenericError = "⚠️ Произошла ошибка, попробуйте ещё раз чуть позже"

const textHelp = `🤖 MAX Task Bot - Справка по командам

📋 /задачи
   Показать список ваших активных задач

✅ /готово {id}
   Отметить задачу как выполненную
   Например: /готово 5

➕ /создать {название}
   Создать новую задачу
   Например: /создать Написать отчет

   Можно добавить описание со второй строки:
   /создать Написать отчет
   Подготовить квартальный отчет по проекту

🗄 /архив
   Показать завершённые и архивные задачи

📦 /в_архив {id}
   Убрать задачу в архив, не отмечая её выполненной
   Например: /в_архив 5

🔄 /start
   Перезапустить настройку ритуалов

❓ /помощь
   Показать эту справку`
