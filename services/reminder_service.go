// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"clinicpro-backend/config"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

// ReminderService messages clients about tomorrow's appointments. It is a
// no-op unless Twilio credentials are configured.
type ReminderService struct {
	db     *store.DB
	client *twilio.RestClient
}

func NewReminderService(db *store.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &ReminderService{db: db, client: client}
}

func (s *ReminderService) StartScheduler(spec string) {
	if s.client == nil {
		config.Log.Info("Twilio not configured, appointment reminders disabled")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, s.SendDailyReminders); err != nil {
		config.Log.Error("Failed to schedule reminders", zap.Error(err))
		return
	}
	c.Start()
	config.Log.Info("Reminder scheduler started", zap.String("cron", spec))
}

// SendDailyReminders messages every client with an appointment tomorrow.
func (s *ReminderService) SendDailyReminders() {
	date := utils.Tomorrow()
	appointments := s.db.Appointments.GetByDate(date)
	config.Log.Info("Processing appointment reminders",
		zap.String("date", date),
		zap.Int("appointments", len(appointments)),
	)

	for _, appt := range appointments {
		if appt.PhoneNumber == "" {
			continue
		}

		message := fmt.Sprintf("مرحباً %s، نذكّرك بموعدك غداً %s الساعة %s مع %s.",
			appt.ClientName, appt.Date, appt.Time, appt.ProviderName)

		// WhatsApp when the phone is in E.164 form, plain SMS otherwise
		params := &twilioApi.CreateMessageParams{}
		params.SetBody(message)
		if strings.HasPrefix(appt.PhoneNumber, "+") {
			params.SetTo("whatsapp:" + appt.PhoneNumber)
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetTo(appt.PhoneNumber)
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			config.Log.Error("Failed to send reminder",
				zap.String("appointmentId", appt.ID),
				zap.Error(err),
			)
			continue
		}
		if resp.Sid != nil {
			config.Log.Info("Reminder sent",
				zap.String("appointmentId", appt.ID),
				zap.String("sid", *resp.Sid),
			)
		}
	}
}
