package utils

import (
	"log"
	"time"

	"storerate/config"

	"github.com/go-resty/resty/v2"
)

// NotifySignup posts the new account to the configured webhook. Meant to be
// called in a goroutine; failures are logged and never surfaced to the caller.
func NotifySignup(name, email string) {
	url := config.AppConfig.SignupWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"event": "user.signup",
			"name":  name,
			"email": email,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error calling signup webhook: %v", err)
		return
	}

	if resp.IsError() {
		log.Printf("Signup webhook returned %d: %s", resp.StatusCode(), resp.String())
	}
}
