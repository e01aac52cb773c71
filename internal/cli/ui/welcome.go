package ui

import (
	"fmt"
	"os"
)

// PrintWelcome выводит приветствие и лого
func PrintWelcome() {
	logoBytes, err := os.ReadFile("logo.txt")
	if err == nil {
		fmt.Println(ColorCyan + string(logoBytes) + ColorReset)
	}
	fmt.Println(ColorBold + IconTarget + " Automation Script Generator v0.1.0" + ColorReset)
	fmt.Println(ColorGray + "Автономный запуск UI тестов с умным поиском элементов" + ColorReset)
	fmt.Println(ColorGray + "Используется: Chromium (Playwright) + OpenAI" + ColorReset)
	fmt.Println()
	PrintHelp()
	fmt.Println(ColorCyan + IconBulb + " Совет:" + ColorReset + " Используйте " + ColorYellow + "open-persistent" + ColorReset + " для входа на сайты, затем " + ColorYellow + "run" + ColorReset + " для прогона тест-кейсов")
	fmt.Println()
	fmt.Println(ColorGray + "⬆️ ⬇️" + ColorReset + " Используйте стрелки для навигации по истории команд")
	fmt.Println()
}

// PrintHelp выводит список доступных команд
func PrintHelp() {
	fmt.Println(ColorYellow + IconList + " Доступные команды:" + ColorReset)
	fmt.Println("  " + ColorGreen + "run" + ColorReset + " <файл.json>      - Выполнить тест-кейс из файла")
	fmt.Println("  " + ColorGreen + "runs" + ColorReset + "                 - Список прогонов")
	fmt.Println("  " + ColorGreen + "show" + ColorReset + " <id>            - Детали прогона с шагами")
	fmt.Println("  " + ColorGreen + "detections" + ColorReset + " [тип]     - Найденные селекторы по типу элемента")
	fmt.Println("  " + ColorGreen + "suggest" + ColorReset + " <описание>   - Сгенерировать шаги из описания")
	fmt.Println("  " + ColorGreen + "open" + ColorReset + " <url>           - Открыть URL в браузере")
	fmt.Println("  " + ColorGreen + "open-persistent" + ColorReset + "      - Открыть браузер для ручной настройки")
	fmt.Println("  " + ColorGreen + "clear" + ColorReset + "                - Очистить экран")
	fmt.Println("  " + ColorGreen + "exit" + ColorReset + "                 - Выход")
	fmt.Println()
}
