package utils

import (
	"testing"
	"time"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")

	token, err := GenerateJWTToken("med-1", "Dra. Carmen Luque", "45678", "1234", "cluque", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	claims, err := ValidateJWTToken(token)
	if err != nil {
		t.Fatalf("ValidateJWTToken: %v", err)
	}
	if claims.IDMedico != "med-1" || claims.Nombre != "Dra. Carmen Luque" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.MPPS != "45678" || claims.CMM != "1234" || claims.Username != "cluque" {
		t.Errorf("claims profesionales = %+v", claims)
	}
}

func TestValidateJWTTokenExpirado(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")

	token, err := GenerateJWTToken("med-1", "n", "m", "c", "u", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}
	if _, err := ValidateJWTToken(token); err == nil {
		t.Fatal("se esperaba error por token expirado")
	}
}

func TestValidateJWTTokenSinSecreto(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := ValidateJWTToken("lo-que-sea"); err == nil {
		t.Fatal("se esperaba error por secreto ausente")
	}
}
