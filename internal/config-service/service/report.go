package service

import (
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/internal/config-service/repository"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const registrySheetName = "Services"

func newRegistryWorkbook(entries []model.ServiceEntry, uptimes map[string]repository.ServiceUptime) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(registrySheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"service_name", "service_url", "health_check_url", "status", "last_health_check", "avg_response_time_ms", "registered_at", "updated_at"}
	if uptimes != nil {
		headers = append(headers, "uptime_percentage", "checks")
	}
	err = f.SetSheetRow(registrySheetName, "A1", &headers)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		lastCheck := ""
		if entry.LastHealthCheck != nil {
			lastCheck = entry.LastHealthCheck.Format("2006-01-02 15:04:05")
		}
		var latency interface{}
		if v, ok := entry.Metadata.Float(model.MetadataKeyAvgResponseTime); ok {
			latency = v
		}
		rowData := []interface{}{
			entry.ServiceName,
			entry.ServiceURL,
			entry.HealthCheckURL,
			string(entry.Status),
			lastCheck,
			latency,
			entry.RegisteredAt.Format("2006-01-02 15:04:05"),
			entry.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if uptimes != nil {
			if u, ok := uptimes[entry.ServiceName]; ok {
				rowData = append(rowData, u.UptimePercentage, u.ChecksCnt)
			} else {
				rowData = append(rowData, nil, 0)
			}
		}
		err = f.SetSheetRow(registrySheetName, fmt.Sprintf("A%d", i+2), &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func generateTextMailBody(summary repository.RegistryHealthSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Services: %d\n"+
			"Healthy: %d\n"+
			"Unhealthy: %d\n\n"+
			"Average Uptime Across All Services: %.2f%%\n",
		summary.TotalServicesCnt,
		summary.HealthyServicesCnt,
		summary.UnhealthyServicesCnt,
		summary.AverageUptimePercentage,
	))
	if len(summary.Services) > 0 {
		sb.WriteString("\n--- SERVICES ---\n")
		for _, s := range summary.Services {
			sb.WriteString(fmt.Sprintf("%s: %s, uptime %.2f%%, avg latency %.2fms\n", s.ServiceName, s.LatestStatus, s.UptimePercentage, s.AvgLatencyMs))
		}
	}
	return sb.String()
}

func generateHTMLBody(summary repository.RegistryHealthSummary) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Services:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Healthy Services:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Unhealthy Services:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
    <p>Per-service details are attached.</p>
</body>`

	return fmt.Sprintf(htmlFormat,
		summary.TotalServicesCnt,
		summary.HealthyServicesCnt,
		summary.UnhealthyServicesCnt,
		summary.AverageUptimePercentage,
	)
}
