package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// ContactSubmission is the contact form payload. It is never persisted.
type ContactSubmission struct {
	Name                 Text       `json:"name" form:"name" validate:"required,notblank"`
	Email                Text       `json:"email" form:"email" validate:"required,notblank,contactemail"`
	Phone                Text       `json:"phone" form:"phone" validate:"required,notblank,phonedigits"`
	Industry             Text       `json:"industry" form:"industry" validate:"required,notblank"`
	CustomIndustry       string     `json:"customIndustry,omitempty" form:"customIndustry"`
	TargetAudience       Text       `json:"targetAudience" form:"targetAudience" validate:"required,notblank"`
	CustomTargetAudience string     `json:"customTargetAudience,omitempty" form:"customTargetAudience"`
	BusinessName         Text       `json:"businessName" form:"businessName" validate:"required,notblank"`
	YourRole             Text       `json:"yourRole" form:"yourRole" validate:"required,notblank"`
	ProblemStatement     Text       `json:"problemStatement" form:"problemStatement" validate:"required,notblank"`
	WhatsApp             string     `json:"whatsapp,omitempty" form:"whatsapp"`
	Services             StringList `json:"services,omitempty" form:"services"`
	SocialPlatforms      StringList `json:"socialPlatforms,omitempty" form:"socialPlatforms"`
	HowDidYouKnow        string     `json:"howDidYouKnow,omitempty" form:"howDidYouKnow"`
	MeetingTime          string     `json:"meetingTime,omitempty" form:"meetingTime"`
}

// Text is a required form value. JSON numbers and booleans are accepted and
// kept in their printed form; zero and false count as absent, like an empty
// string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*t = ""
		return nil
	case bytes.Equal(data, []byte("true")):
		*t = "true"
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		kind := "object"
		if data[0] == '[' {
			kind = "array"
		}
		return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(Text(""))}
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(Text(""))}
	}
	if f == 0 {
		*t = ""
		return nil
	}
	*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (t Text) String() string {
	return string(t)
}

// StringList accepts either a single JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*l = items
	return nil
}

type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type EndpointInfo struct {
	Message        string   `json:"message"`
	Method         string   `json:"method"`
	ContentType    string   `json:"contentType"`
	RequiredFields []string `json:"requiredFields"`
	OptionalFields []string `json:"optionalFields"`
}
