package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"smart-box-service/internal/model"
)

// Variante de escaneo: el remitente abre su caja o el receptor abre la suya
type ScanVariant string

const (
	VariantSender   ScanVariant = "sender"
	VariantReceiver ScanVariant = "receiver"
)

type ScanOutcome string

const (
	// Falta el dato escaneado o todavía no hay orden candidata
	OutcomeWaiting ScanOutcome = "waiting"
	// El QR no coincide con la orden candidata
	OutcomeNoMatch ScanOutcome = "no_match"
	// El TOGGLE anterior está dentro de la ventana mínima
	OutcomeCooldown ScanOutcome = "cooldown"
	// Se abrió la caja
	OutcomeOpened ScanOutcome = "opened"
)

type ScanResult struct {
	Outcome ScanOutcome
	// Segundos enteros que faltan para poder accionar de nuevo (solo cooldown)
	RemainingSeconds int
}

var ErrActuationFailed = errors.New("no se pudo comunicar con el ESP32")

// Gateway manda un comando TOGGLE al dispositivo y espera el ack
type Gateway interface {
	Toggle(ctx context.Context) (string, error)
}

// Notifier avisa por mail que la caja del receptor fue abierta
type Notifier interface {
	SendBoxOpened(to, orderID string) error
}

// UnlockService coordina la apertura de la caja: compara el QR escaneado
// contra la orden candidata, aplica la ventana mínima entre accionamientos,
// manda el TOGGLE y persiste el cambio de estado.
//
// El contexto de escaneo (orden candidata + último accionamiento) es un único
// slot por proceso, protegido por mutex durante TODO el submit. El mutex
// serializa los escaneos concurrentes: sin él, dos requests contra órdenes
// distintas podían pisarse la orden candidata entre la comparación y la
// escritura en la base.
type UnlockService struct {
	mu            sync.Mutex
	activeOrderID string
	// último accionamiento por clave de alcance: "" si el cooldown es global,
	// el orderId si es por orden
	lastActuation map[string]time.Time

	repo     OrderRepository
	gateway  Gateway
	notifier Notifier

	interval   time.Duration
	perOrder   bool
	adminToken string

	now func() time.Time
}

func NewUnlockService(repo OrderRepository, gw Gateway, notifier Notifier, interval time.Duration, cooldownScope, adminToken string) *UnlockService {
	return &UnlockService{
		lastActuation: make(map[string]time.Time),
		repo:          repo,
		gateway:       gw,
		notifier:      notifier,
		interval:      interval,
		perOrder:      cooldownScope == "order",
		adminToken:    adminToken,
		now:           time.Now,
	}
}

// RecordOrder registra la orden candidata sin escanear nada.
// Lo usa /searchOrder: buscar una orden la deja lista para el escaneo.
func (s *UnlockService) RecordOrder(orderID string) {
	if orderID == "" {
		return
	}
	s.mu.Lock()
	s.activeOrderID = orderID
	s.mu.Unlock()
}

// SubmitScan procesa un escaneo de QR.
//
// Si viene orderId, reemplaza a la orden candidata incondicionalmente
// (último escritor gana). Después compara el dato escaneado contra la
// candidata y, si coincide y la ventana ya pasó, acciona el servo y marca
// box_status (sender) o receiver_box_status (receiver) como "Opened".
// En la variante receiver además se notifica por mail al remitente,
// best-effort: un fallo del mail no toca la respuesta ni el estado.
func (s *UnlockService) SubmitScan(ctx context.Context, data, orderID string, variant ScanVariant) (ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if orderID != "" {
		s.activeOrderID = orderID
		log.Println("Orden candidata registrada:", orderID)
	}

	// Sin dato o sin candidata todavía no hay nada que comparar
	if data == "" || s.activeOrderID == "" {
		return ScanResult{Outcome: OutcomeWaiting}, nil
	}

	// El override de admin solo aplica si hay token configurado
	if data != s.activeOrderID && !(s.adminToken != "" && data == s.adminToken) {
		return ScanResult{Outcome: OutcomeNoMatch}, nil
	}

	matched := s.activeOrderID

	key := ""
	if s.perOrder {
		key = matched
	}

	now := s.now()
	elapsed := now.Sub(s.lastActuation[key])
	if elapsed < s.interval {
		// Redondeo hacia arriba a segundos enteros
		remaining := int((s.interval - elapsed + time.Second - 1) / time.Second)
		return ScanResult{Outcome: OutcomeCooldown, RemainingSeconds: remaining}, nil
	}

	ack, err := s.gateway.Toggle(ctx)
	if err != nil {
		// Sin cambios de estado: el próximo escaneo puede reintentar ya mismo
		return ScanResult{}, errors.Join(ErrActuationFailed, err)
	}
	log.Println("Respuesta del ESP32:", ack)

	// El accionamiento físico ya ocurrió: la ventana se consume acá,
	// aunque la escritura en la base después falle.
	s.lastActuation[key] = now

	field := "box_status"
	if variant == VariantReceiver {
		field = "receiver_box_status"
	}

	if err := s.repo.SetBoxStatus(ctx, matched, field, model.BoxOpened); err != nil {
		return ScanResult{}, err
	}
	log.Printf("Orden %s: %s actualizado a '%s'", matched, field, model.BoxOpened)

	if variant == VariantReceiver {
		s.notifySender(ctx, matched)
	}

	return ScanResult{Outcome: OutcomeOpened}, nil
}

// notifySender dispara el mail al remitente en background.
// Cualquier error se loguea y nada más: la caja ya está abierta.
func (s *UnlockService) notifySender(ctx context.Context, orderID string) {
	ord, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		log.Println("No se pudo leer la orden para notificar:", err)
		return
	}
	if ord.SenderEmail == "" {
		log.Println("Orden sin sender_email, se omite la notificación:", orderID)
		return
	}

	go func(email, id string) {
		if err := s.notifier.SendBoxOpened(email, id); err != nil {
			log.Println("Error enviando email de notificación:", err)
			return
		}
		log.Println("Email de notificación enviado a:", email)
	}(ord.SenderEmail, orderID)
}
