// Copyright 2022 Board of Trustees of the University of Illinois.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emailer

import (
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	typeMail       logutils.MessageDataType = "mail"
	typeRecipients logutils.MessageDataType = "mail recipients"
)

// Adapter implements the Emailer interface over SMTP
type Adapter struct {
	smtpFrom    string
	emailDialer *gomail.Dialer
}

// Send sends an email to one or more comma separated addresses
func (a *Adapter) Send(toEmail string, subject string, body string, attachmentFilename *string) error {
	if a.emailDialer == nil {
		return errors.ErrorData(logutils.StatusMissing, "email dialer", nil)
	}

	recipients := splitRecipients(toEmail)
	if len(recipients) == 0 {
		return errors.ErrorData(logutils.StatusMissing, typeRecipients, nil)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", a.smtpFrom)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if attachmentFilename != nil {
		m.Attach(*attachmentFilename)
	}

	if err := a.emailDialer.DialAndSend(m); err != nil {
		return errors.WrapErrorAction(logutils.ActionSend, typeMail, &logutils.FieldArgs{"recipients": len(recipients)}, err)
	}
	return nil
}

func splitRecipients(toEmail string) []string {
	recipients := []string{}
	for _, email := range strings.Split(toEmail, ",") {
		email = strings.TrimSpace(email)
		if len(email) > 0 {
			recipients = append(recipients, email)
		}
	}
	return recipients
}

// NewEmailerAdapter creates a new emailer adapter instance
func NewEmailerAdapter(smtpHost string, smtpPortNum int, smtpUser string, smtpPassword string, smtpFrom string) *Adapter {
	var emailDialer *gomail.Dialer
	if len(smtpHost) > 0 {
		emailDialer = gomail.NewDialer(smtpHost, smtpPortNum, smtpUser, smtpPassword)
	}

	return &Adapter{smtpFrom: smtpFrom, emailDialer: emailDialer}
}
