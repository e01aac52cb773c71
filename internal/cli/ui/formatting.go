package ui

import "fmt"

// FormatStatus возвращает иконку, цвет и текст для статуса прогона или шага
func FormatStatus(status string) (icon, color, text string) {
	switch status {
	case "passed":
		return IconCheckmark, ColorGreen, "успешно"
	case "failed":
		return IconCross, ColorRed, "провален"
	case "running":
		return IconPlay, ColorCyan, "выполняется"
	case "pending":
		return IconClock, ColorYellow, "ожидает"
	case "skipped":
		return IconSkip, ColorGray, "пропущен"
	default:
		return IconClock, ColorYellow, status
	}
}

// ClearScreen очищает терминал
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
