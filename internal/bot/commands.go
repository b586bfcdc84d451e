package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"tasker-bot/internal/model"
)

const descriptionPreviewLen = 100

func (b *Bot) handleListTasks(ctx context.Context, userID int64, chatID, _ string) {
	chat, err := b.chats.GetOrCreate(ctx, chatID, "")
	if err != nil {
		log.Printf("list tasks: resolve chat %s: %v", chatID, err)
		b.apologize(ctx, userID)
		return
	}

	tasks, err := b.tasks.ListActiveForUser(ctx, chat.ID, userID)
	if err != nil {
		log.Printf("list tasks for %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	b.send(ctx, userID, formatTaskList(tasks))
}

func (b *Bot) handleCompleteTask(ctx context.Context, userID int64, _, text string) {
	taskID, ok := parseCommandID(text, cmdComplete)
	if !ok {
		b.send(ctx, userID, textCompleteUsage)
		return
	}

	done, err := b.tasks.CompleteIfOwned(ctx, taskID, userID, time.Now())
	if err != nil {
		log.Printf("complete task %d for %d: %v", taskID, userID, err)
		b.apologize(ctx, userID)
		return
	}

	if !done {
		// Missing, foreign and already-done tasks all look the same to
		// the caller: no ownership information leaks.
		b.send(ctx, userID, fmt.Sprintf("⚠️ Задача #%d не найдена или уже выполнена\nИспользуйте /задачи для просмотра активных задач", taskID))
		return
	}

	b.send(ctx, userID, fmt.Sprintf("✅ Задача #%d отмечена как выполненная!", taskID))
}

func (b *Bot) handleCreateTask(ctx context.Context, userID int64, chatID, text string) {
	body := strings.TrimSpace(strings.TrimPrefix(text, cmdCreate))
	if body == "" {
		b.send(ctx, userID, textCreateUsage)
		return
	}

	title, description := splitTitleDescription(body)

	chat, err := b.chats.GetOrCreate(ctx, chatID, "")
	if err != nil {
		log.Printf("create task: resolve chat %s: %v", chatID, err)
		b.apologize(ctx, userID)
		return
	}

	task := model.Task{
		ChatID:      chat.ID,
		CreatorID:   userID,
		Title:       title,
		Description: description,
		Status:      model.TaskActive,
	}
	if err := b.tasks.Create(ctx, &task); err != nil {
		log.Printf("create task for %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	reply := fmt.Sprintf("✅ Задача #%d создана!\n\n📝 %s", task.ID, task.Title)
	if task.Description != "" {
		reply += "\n📄 " + truncateRunes(task.Description, descriptionPreviewLen)
	}
	b.send(ctx, userID, reply)
}

func (b *Bot) handleArchiveTask(ctx context.Context, userID int64, _, text string) {
	taskID, ok := parseCommandID(text, cmdArchive)
	if !ok {
		b.send(ctx, userID, textArchiveUsage)
		return
	}

	moved, err := b.tasks.ArchiveIfOwned(ctx, taskID, userID)
	if err != nil {
		log.Printf("archive task %d for %d: %v", taskID, userID, err)
		b.apologize(ctx, userID)
		return
	}

	if !moved {
		b.send(ctx, userID, fmt.Sprintf("⚠️ Задача #%d не найдена среди активных", taskID))
		return
	}

	b.send(ctx, userID, fmt.Sprintf("📦 Задача #%d убрана в архив", taskID))
}

func (b *Bot) handleArchiveList(ctx context.Context, userID int64, chatID, _ string) {
	chat, err := b.chats.GetOrCreate(ctx, chatID, "")
	if err != nil {
		log.Printf("archive list: resolve chat %s: %v", chatID, err)
		b.apologize(ctx, userID)
		return
	}

	tasks, err := b.tasks.ListArchiveForChat(ctx, chat.ID)
	if err != nil {
		log.Printf("archive list for %d: %v", userID, err)
		b.apologize(ctx, userID)
		return
	}

	b.send(ctx, userID, formatArchiveList(tasks))
}

func (b *Bot) handleHelp(ctx context.Context, userID int64, _, _ string) {
	b.send(ctx, userID, textHelp)
}

// parseCommandID extracts the integer argument of commands like
// "/готово 5". The first token after the command must be a plain number.
func parseCommandID(text, command string) (uint, bool) {
	rest := strings.TrimPrefix(text, command)
	if rest == "" || !strings.HasPrefix(rest, " ") {
		return 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, false
	}
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// splitTitleDescription treats the first line as the title and the rest
// as the description.
func splitTitleDescription(body string) (string, string) {
	parts := strings.SplitN(body, "\n", 2)
	title := strings.TrimSpace(parts[0])
	description := ""
	if len(parts) > 1 {
		description = strings.TrimSpace(parts[1])
	}
	return title, description
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func formatTaskList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return textNoActiveTasks
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 Ваши активные задачи (%d):\n", len(tasks)))

	for i, task := range tasks {
		sb.WriteString(fmt.Sprintf("\n%d. [%d] %s\n", i+1, task.ID, task.Title))
		if task.Tag != "" {
			sb.WriteString(fmt.Sprintf("   🏷️ %s\n", task.Tag))
		}
		if task.Description != "" {
			sb.WriteString(fmt.Sprintf("   📄 %s\n", truncateRunes(task.Description, descriptionPreviewLen)))
		}
		if task.Deadline != nil {
			sb.WriteString(fmt.Sprintf("   ⏰ %s\n", task.Deadline.Format("02.01.2006 15:04")))
		}
	}

	return strings.TrimSpace(sb.String())
}

func formatArchiveList(tasks []model.Task) string {
	if len(tasks) == 0 {
		return textNoArchivedTasks
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗄 Архив задач (%d):\n", len(tasks)))

	for i, task := range tasks {
		marker := "📦"
		if task.Status == model.TaskCompleted {
			marker = "✅"
		}
		sb.WriteString(fmt.Sprintf("\n%d. [%d] %s %s\n", i+1, task.ID, marker, task.Title))
		if task.CompletedAt != nil {
			sb.WriteString(fmt.Sprintf("   🗓 %s\n", task.CompletedAt.Format("02.01.2006 15:04")))
		}
	}

	return strings.TrimSpace(sb.String())
}
