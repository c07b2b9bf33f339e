package telegram

import (
	"fmt"
	"strings"

	"table-finder/internal/domain/entity"
)

// formatResult описывает найденную таблицу для ответа пользователю
func formatResult(scan *entity.ScanResult) string {
	bounds, ok := scan.Bounds()
	if !ok {
		return msgNoTable
	}

	var sb strings.Builder
	sb.WriteString("✅ Таблица найдена\n\n")
	fmt.Fprintf(&sb, "📐 Рамка: (%d, %d), (%d, %d)\n", bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	fmt.Fprintf(&sb, "📏 Размер: %d×%d из %d×%d\n", bounds.Dx(), bounds.Dy(), scan.ImageWidth, scan.ImageHeight)
	fmt.Fprintf(&sb, "🧩 Отрезков: %d, направляющих: %d", scan.SegmentCount, scan.GroupCount)

	if corners, ok := scan.Outline.Corners(); ok {
		sb.WriteString("\n\n📍 Углы:")
		for _, c := range corners {
			p := c.ImagePoint()
			fmt.Fprintf(&sb, "\n• (%d, %d)", p.X, p.Y)
		}
	}

	return sb.String()
}

// formatHistory выводит последние проверки, новые сверху
func formatHistory(scans []*entity.ScanResult) string {
	if len(scans) == 0 {
		return msgNoHistory
	}

	var sb strings.Builder
	sb.WriteString("🗂 Последние проверки:")
	for i, scan := range scans {
		fmt.Fprintf(&sb, "\n\n%d. %s", i+1, scan.CreatedAt.Format("02.01.2006 15:04"))
		if bounds, ok := scan.Bounds(); ok {
			fmt.Fprintf(&sb, ": таблица %d×%d", bounds.Dx(), bounds.Dy())
		} else {
			sb.WriteString(": таблица не найдена")
		}
	}

	return sb.String()
}
