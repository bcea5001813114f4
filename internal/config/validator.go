package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/FABAINT/open-lovable/internal/pkg/errors"
	"github.com/FABAINT/open-lovable/pkg/cronx"
	"github.com/FABAINT/open-lovable/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역에서 공유하는 Validator 인스턴스 (동시 사용 안전)
var validate = newValidator()

// newValidator 커스텀 규칙(cors_origin, cron_spec)이 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름을 사용한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("cron_spec", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron_spec' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// validateCronSpec 같은 구조체의 Enabled 필드가 false이고 값이 비어 있으면 검사를 생략합니다.
func validateCronSpec(fl validator.FieldLevel) bool {
	spec := fl.Field().String()
	if spec == "" {
		if enabled := fl.Parent().FieldByName("Enabled"); enabled.IsValid() && enabled.Kind() == reflect.Bool && !enabled.Bool() {
			return true
		}
	}
	return cronx.Validate(spec) == nil
}

// checkStruct 구조체를 검증하고 첫 번째 위반 항목을 사용자 친화적인 메시지로 반환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 스케줄(%s) 설정이 유효하지 않습니다: '%v' (예: @every 1m, 0 */5 * * * *)", contextName, fe.Field(), fe.Value()))
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 필수 항목(%s)이 비어있습니다", contextName, fe.Field()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s=%v (조건: %s=%s)", contextName, fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
}
