package renderer

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/go-pdf/fpdf"

	"github.com/forexel/PrivetManagerApp/internal/canonical"
	"github.com/forexel/PrivetManagerApp/pkg/config"
)

const fontFamily = "DejaVu"

// Метаданные документа фиксированные: одинаковые снимки должны давать
// байт-в-байт одинаковый PDF, иначе поплывёт хеш в подписи.
var fixedStamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer собирает печатную форму договора из снимков, зафиксированных
// при генерации. Живые данные клиента сюда не попадают.
type Renderer struct {
	cfg config.Renderer
}

func New(cfg config.Renderer) *Renderer {
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Render(contractNumber string, passport map[string]any, devices []map[string]any, tariff map[string]any, clientFullName string) ([]byte, error) {
	f := fpdf.New("P", "mm", "A4", "")

	f.SetCreationDate(fixedStamp)
	f.SetModificationDate(fixedStamp)

	f.AddUTF8Font(fontFamily, "", r.cfg.FontPath)
	f.AddUTF8Font(fontFamily, "B", r.cfg.FontPath)

	if f.Err() {
		return nil, fmt.Errorf("load font %s: %w", r.cfg.FontPath, f.Error())
	}

	f.SetTitle("Договор "+contractNumber, true)
	f.SetMargins(15, 15, 15)
	f.SetAutoPageBreak(true, 20)
	f.AliasNbPages("")

	f.SetFooterFunc(func() {
		f.SetY(-12)
		f.SetFont(fontFamily, "", 8)
		f.CellFormat(0, 6, fmt.Sprintf("Договор %s, страница %d из {nb}", contractNumber, f.PageNo()), "", 0, "C", false, 0, "")
	})

	f.AddPage()

	writeHeader(f, contractNumber)
	writeCustomer(f, passport, clientFullName)
	writeDevices(f, devices)
	writeTariff(f, tariff)
	writeSigning(f, passport, clientFullName)

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(f *fpdf.Fpdf, number string) {
	f.SetFont(fontFamily, "B", 16)
	f.CellFormat(0, 10, "ДОГОВОР НА СЕРВИСНОЕ ОБСЛУЖИВАНИЕ", "", 1, "C", false, 0, "")

	f.SetFont(fontFamily, "B", 12)
	f.CellFormat(0, 8, "№ "+number, "", 1, "C", false, 0, "")

	// Дата договора берётся из номера, а не из часов: печатная форма
	// обязана быть воспроизводимой.
	if date, ok := dateFromNumber(number); ok {
		f.SetFont(fontFamily, "", 10)
		f.CellFormat(0, 6, "от "+date.Format("02.01.2006"), "", 1, "C", false, 0, "")
	}

	f.Ln(4)
}

func writeCustomer(f *fpdf.Fpdf, passport map[string]any, clientFullName string) {
	sectionTitle(f, "1. Заказчик")

	name := strings.TrimSpace(strings.Join([]string{
		canonical.AsString(passport["last_name"]),
		canonical.AsString(passport["first_name"]),
		canonical.AsString(passport["middle_name"]),
	}, " "))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = clientFullName
	}

	line(f, "ФИО: %s", name)
	line(f, "Паспорт: серия %s № %s", canonical.AsString(passport["series"]), canonical.AsString(passport["number"]))

	issueDate := canonical.AsString(passport["issue_date"])
	if t, err := time.Parse("2006-01-02", issueDate); err == nil {
		issueDate = t.Format("02.01.2006")
	}

	line(f, "Выдан: %s, код подразделения %s, %s",
		canonical.AsString(passport["issued_by"]),
		canonical.AsString(passport["issue_code"]),
		issueDate,
	)
	line(f, "Адрес регистрации: %s", canonical.AsString(passport["registration_address"]))

	if phone := canonical.AsString(passport["phone"]); phone != "" {
		line(f, "Телефон: +7%s", phone)
	}
	if email := canonical.AsString(passport["email"]); email != "" {
		line(f, "Email: %s", email)
	}
	if address := canonical.AsString(passport["address"]); address != "" {
		line(f, "Адрес обслуживания: %s", address)
	}

	f.Ln(4)
}

func writeDevices(f *fpdf.Fpdf, devices []map[string]any) {
	sectionTitle(f, "2. Обслуживаемое оборудование")

	if len(devices) == 0 {
		line(f, "Оборудование на обслуживание не передаётся.")
		f.Ln(4)

		return
	}

	for i, d := range devices {
		f.SetFont(fontFamily, "B", 10)
		line(f, "%d. %s (%s)", i+1, canonical.AsString(d["title"]), canonical.AsString(d["device_type"]))
		f.SetFont(fontFamily, "", 10)

		if specs := specsLine(d["specs"]); specs != "" {
			line(f, "    Характеристики: %s", specs)
		}
		if desc := canonical.AsString(d["description"]); desc != "" {
			line(f, "    Описание: %s", desc)
		}

		line(f, "    Доплата за обслуживание: %.2f ₽ в месяц", canonical.AsFloat(d["extra_fee"]))
	}

	f.Ln(4)
}

func writeTariff(f *fpdf.Fpdf, tariff map[string]any) {
	sectionTitle(f, "3. Тариф и оплата")

	name := canonical.AsString(tariff["name"])
	if name == "" {
		name = "Базовый"
	}

	base := canonical.AsFloat(tariff["base_fee"])
	rate := canonical.AsFloat(tariff["extra_per_device"])
	count := canonical.AsInt(tariff["device_count"])
	total := canonical.AsFloat(tariff["total_extra_fee"])
	monthly := base + total

	line(f, "Тариф: %s", name)
	line(f, "Абонентская плата: %.2f ₽ в месяц", base)
	line(f, "Доплата за оборудование: %d x %.2f ₽ = %.2f ₽ в месяц", count, rate, total)
	line(f, "Итого к оплате: %.2f ₽ в месяц (%s)", monthly, amountInWords(monthly))

	f.Ln(4)
}

func writeSigning(f *fpdf.Fpdf, passport map[string]any, clientFullName string) {
	sectionTitle(f, "4. Подписание")

	line(f, "Договор подписывается простой электронной подписью: заказчик подтверждает "+
		"код, направленный ему в мобильном приложении.")
	line(f, "Момент подписания и хеш настоящего документа фиксируются исполнителем.")

	f.Ln(8)

	name := clientFullName
	if name == "" {
		name = strings.TrimSpace(canonical.AsString(passport["last_name"]) + " " + canonical.AsString(passport["first_name"]))
	}

	line(f, "Исполнитель: ООО «Привет Сервис»")
	f.Ln(2)
	line(f, "Заказчик: %s", name)
}

func sectionTitle(f *fpdf.Fpdf, title string) {
	f.SetFont(fontFamily, "B", 11)
	f.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	f.SetFont(fontFamily, "", 10)
}

func line(f *fpdf.Fpdf, format string, args ...any) {
	f.MultiCell(0, 6, fmt.Sprintf(format, args...), "", "L", false)
}

// Характеристики печатаются в отсортированном порядке ключей, чтобы
// одинаковый снимок всегда давал одинаковую строку.
func specsLine(specs any) string {
	m, ok := specs.(map[string]any)
	if !ok || len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, m[k]))
	}

	return strings.Join(parts, "; ")
}

// Сумма прописью для блока оплаты, в стиле платёжных документов.
func amountInWords(amount float64) string {
	rubles := int(amount)
	kopecks := int(math.Round((amount - float64(rubles)) * 100))

	return fmt.Sprintf("%s рублей %02d копеек", num2words.Convert(rubles), kopecks)
}

func dateFromNumber(number string) (time.Time, bool) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	t, err := time.Parse("060102", parts[1])
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
