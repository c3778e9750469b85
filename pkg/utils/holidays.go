package util

import (
	"Sistem-Absensi-Geofence/models"
	"encoding/json"
	"io"
	"net/http"
)

// HolidayAPIData adalah struct helper untuk parsing JSON dari API
type HolidayAPIData struct {
	Date              string `json:"holiday_date"`
	Name              string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

const holidayAPIBase = "https://api-harilibur.vercel.app/api?year="

func fetchHolidays(year string) ([]HolidayAPIData, error) {
	resp, err := http.Get(holidayAPIBase + year)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var rawHolidays []HolidayAPIData
	if err := json.Unmarshal(body, &rawHolidays); err != nil {
		return nil, err
	}
	return rawHolidays, nil
}

// GetHolidayMap mengambil data hari libur nasional dari API eksternal dalam
// bentuk map tanggal ("2006-01-02") untuk pengecekan cepat.
func GetHolidayMap(year string) (map[string]bool, error) {
	rawHolidays, err := fetchHolidays(year)
	if err != nil {
		return nil, err
	}

	holidayMap := make(map[string]bool)
	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidayMap[rawHoliday.Date] = true
		}
	}
	return holidayMap, nil
}

// GetExternalHolidaysForFrontend mengambil data hari libur dari API dalam bentuk slice.
func GetExternalHolidaysForFrontend(year string) ([]models.Holiday, error) {
	rawHolidays, err := fetchHolidays(year)
	if err != nil {
		return nil, err
	}

	var holidays []models.Holiday
	for _, rawHoliday := range rawHolidays {
		if rawHoliday.IsNationalHoliday {
			holidays = append(holidays, models.Holiday{
				Date: rawHoliday.Date,
				Name: rawHoliday.Name,
			})
		}
	}
	return holidays, nil
}
