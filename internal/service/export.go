package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// ExportClients собирает XLSX-реестр клиентов, закреплённых за текущим
// сотрудником.
func (s *Service) ExportClients(ctx context.Context, contour entity.Contour) ([]byte, string, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return nil, "", err
	}

	clients, err := s.repo.Clients(ctx, contour, entity.ClientTabMine, staff.ID)
	if err != nil {
		return nil, "", fmt.Errorf("list clients: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Клиенты"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ФИО", "Телефон", "Email", "Статус", "Устройств", "Зарегистрирован"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, c := range clients {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.User.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), orEmpty(c.User.Email))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(c.Client.Status))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), c.DevicesCount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), c.Client.CreatedAt.Format("02.01.2006"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("clients_%s.xlsx", time.Now().UTC().Format("20060102_150405"))

	slog.InfoContext(ctx, fmt.Sprintf("Экспортирован реестр клиентов: %d строк", len(clients)))

	return buf.Bytes(), filename, nil
}
