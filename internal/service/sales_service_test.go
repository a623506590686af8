package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartbyte-be/internal/config"
	"smartbyte-be/internal/dto"
	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/pkg/logger"
	"smartbyte-be/internal/repository/contract"
	"smartbyte-be/internal/repository/memory"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/internal/repository/unitofwork"
	"smartbyte-be/pkg/dialogue"
	"smartbyte-be/pkg/dialogue/archetype"
	"smartbyte-be/pkg/dialogue/catalogfilter"
	"smartbyte-be/pkg/dialogue/prompt"
	"smartbyte-be/pkg/dialogue/slots"
	"smartbyte-be/pkg/dialogue/stage"
	"smartbyte-be/pkg/dialogue/upsell"
	"smartbyte-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory repositories ----

type fakeSessionRepo struct {
	sessions map[string]*entity.ChatSession
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.ChatSession) error {
	s.Id = uuid.New()
	s.CreatedAt = time.Now()
	f.sessions[s.SessionKey] = s
	return nil
}

func (f *fakeSessionRepo) Update(_ context.Context, s *entity.ChatSession) error {
	f.sessions[s.SessionKey] = s
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func (f *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, sp := range specs {
		if byKey, ok := sp.(specification.BySessionKey); ok {
			if s, found := f.sessions[byKey.SessionKey]; found {
				return s, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatSession, error) {
	return nil, nil
}
func (f *fakeSessionRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeMessageRepo struct {
	messages []*entity.ChatMessage
}

func (f *fakeMessageRepo) Create(_ context.Context, m *entity.ChatMessage) error {
	m.Id = uuid.New()
	m.CreatedAt = time.Now()
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeMessageRepo) DeleteAllBySessionId(_ context.Context, sessionId uuid.UUID) error {
	return nil
}

func (f *fakeMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var sessionId uuid.UUID
	for _, sp := range specs {
		if bySession, ok := sp.(specification.BySessionId); ok {
			sessionId = bySession.SessionId
		}
	}
	var out []*entity.ChatMessage
	for _, m := range f.messages {
		if m.SessionId == sessionId {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(f.messages)), nil
}

type fakeRecommendationRepo struct {
	created []*entity.Recommendation
}

func (f *fakeRecommendationRepo) Create(_ context.Context, r *entity.Recommendation) error {
	r.Id = uuid.New()
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRecommendationRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Recommendation, error) {
	return f.created, nil
}
func (f *fakeRecommendationRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Filter(_ context.Context, filter contract.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if filter.ProductType != "" && p.ProductType != filter.ProductType {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.PriceMax > 0 && p.Price > filter.PriceMax {
			continue
		}
		if filter.PriceMin > 0 && p.Price < filter.PriceMin {
			continue
		}
		if p.Stock < filter.StockMin {
			continue
		}
		out = append(out, p)
	}
	// Cheapest first, stable for small fixtures.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Price < out[i].Price {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(context.Context, uuid.UUID) error       { return nil }
func (f *fakeProductRepo) UpsertBySKU(context.Context, *entity.Product) (bool, error) {
	return false, nil
}
func (f *fakeProductRepo) FindOne(context.Context, ...specification.Specification) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(f.products)), nil
}

// ---- unit of work ----

type fakeUnitOfWork struct {
	sessions *fakeSessionRepo
	messages *fakeMessageRepo
	recs     *fakeRecommendationRepo
	products *fakeProductRepo
}

func (f *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error               { return nil }
func (f *fakeUnitOfWork) Rollback() error             { return nil }

func (f *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }
func (f *fakeUnitOfWork) ProductRepository() contract.ProductRepository {
	return f.products
}
func (f *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return f.sessions
}
func (f *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return f.messages
}
func (f *fakeUnitOfWork) RecommendationRepository() contract.RecommendationRepository {
	return f.recs
}

type fakeUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

// ---- llm and publisher ----

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, promptText string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, nil, opts...)
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) PublishSalesEvent(_ context.Context, eventType string, _ map[string]interface{}) error {
	f.events = append(f.events, eventType)
	return nil
}

// ---- fixture ----

type salesFixture struct {
	svc       ISalesService
	uow       *fakeUnitOfWork
	llm       *fakeLLM
	publisher *fakePublisher
}

func newSalesFixture(llmClient *fakeLLM, products ...*entity.Product) *salesFixture {
	uow := &fakeUnitOfWork{
		sessions: &fakeSessionRepo{sessions: map[string]*entity.ChatSession{}},
		messages: &fakeMessageRepo{},
		recs:     &fakeRecommendationRepo{},
		products: &fakeProductRepo{products: products},
	}
	log := logger.NopLogger{}
	extractor := slots.NewExtractor()
	publisher := &fakePublisher{}

	svc := NewSalesService(
		&fakeUowFactory{uow: uow},
		memory.NewSessionCache(),
		stage.NewClassifier(extractor, log),
		archetype.NewClassifier(extractor, log),
		catalogfilter.NewFilter(uow.products, log),
		upsell.NewSelector(uow.products, extractor, log),
		prompt.NewBuilder(),
		llmClient,
		publisher,
		config.SalesConfig{
			BundleComputerShare: 0.75,
			AccessoryBudgetCap:  1000,
			GenerateTimeout:     5 * time.Second,
			CatalogLimit:        5,
		},
		log,
	)

	return &salesFixture{svc: svc, uow: uow, llm: llmClient, publisher: publisher}
}

func studentLaptop() *entity.Product {
	return &entity.Product{
		Id: uuid.New(), SKU: "LT-ST-1", Name: "IdeaPad Slim 3", Brand: "Lenovo",
		ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
		Price: 2290, Stock: 14,
		Specs: map[string]interface{}{"cpu": "Core i5", "ram_gb": float64(16), "storage_gb": float64(512)},
	}
}

func storeMouse() *entity.Product {
	return &entity.Product{
		Id: uuid.New(), SKU: "AC-MS-1", Name: "G305", Brand: "Logitech",
		ProductType: entity.ProductTypeAccessory, Category: "mouse",
		Price: 199, Stock: 30,
	}
}

// ---- tests ----

func TestFullRecommendationFlow(t *testing.T) {
	f := newSalesFixture(&fakeLLM{reply: "אני ממליץ על Lenovo IdeaPad Slim 3 במחיר 2290 ₪"}, studentLaptop(), storeMouse())

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-1",
		Message:    "אני סטודנט ומחפש מחשב נייד ללימודים בתקציב 4000",
	})
	require.NoError(t, err)

	assert.Equal(t, "Student", res.CustomerType)
	assert.Equal(t, "recommendation_given", res.Stage)
	require.Len(t, res.RecommendedItems, 1)
	assert.Equal(t, "LT-ST-1", res.RecommendedItems[0].SKU)
	require.NotNil(t, res.UpsellItem)
	assert.Equal(t, "AC-MS-1", res.UpsellItem.SKU)
	assert.Contains(t, res.AssistantMessage, "2290")

	// Session started, recommendation persisted and published, both chat
	// turns stored.
	assert.Contains(t, f.publisher.events, "SESSION_STARTED")
	assert.Contains(t, f.publisher.events, "RECOMMENDATION_CREATED")
	require.Len(t, f.uow.recs.created, 1)
	assert.NotNil(t, f.uow.recs.created[0].UpsellProductId)
	assert.Len(t, f.uow.messages.messages, 2)
}

func TestLLMFailureFallsBackToTemplate(t *testing.T) {
	f := newSalesFixture(&fakeLLM{err: errors.New("model offline")}, studentLaptop(), storeMouse())

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-2",
		Message:    "אני סטודנט ומחפש מחשב נייד ללימודים בתקציב 4000",
	})
	require.NoError(t, err)

	// The template states the exact catalog facts.
	assert.Contains(t, res.AssistantMessage, "Lenovo IdeaPad Slim 3")
	assert.Contains(t, res.AssistantMessage, "2290 ₪")
	require.Len(t, f.uow.recs.created, 1)
}

func TestMisquotedPriceIsCorrected(t *testing.T) {
	f := newSalesFixture(&fakeLLM{reply: "מחשב מעולה! עולה רק 1999 ₪"}, studentLaptop(), storeMouse())

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-3",
		Message:    "אני סטודנט ומחפש מחשב נייד ללימודים בתקציב 4000",
	})
	require.NoError(t, err)
	assert.Contains(t, res.AssistantMessage, "2290 ₪")
	assert.NotContains(t, res.AssistantMessage, "1999")
}

func TestOffTopicRedirect(t *testing.T) {
	f := newSalesFixture(&fakeLLM{reply: "should not be called"})

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-4",
		Message:    "מה דעתך על הסרט החדש?",
	})
	require.NoError(t, err)

	assert.Equal(t, "off_topic", res.Stage)
	assert.Contains(t, res.AssistantMessage, "מתמחה")
	assert.Empty(t, res.RecommendedItems)
	assert.Equal(t, 0, f.llm.calls)
}

func TestClarificationPath(t *testing.T) {
	f := newSalesFixture(&fakeLLM{reply: "איזה כיף! למה בעיקר תשתמש במחשב?"})

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-5",
		Message:    "אני צריך מחשב",
	})
	require.NoError(t, err)

	assert.Equal(t, "greeting", res.Stage)
	assert.NotEmpty(t, res.AssistantMessage)
	assert.Empty(t, res.RecommendedItems)
	assert.Nil(t, res.UpsellItem)
	assert.Equal(t, 1, f.llm.calls)
	assert.Empty(t, f.uow.recs.created)
}

func TestClarificationLLMFailureUsesBareQuestion(t *testing.T) {
	f := newSalesFixture(&fakeLLM{err: errors.New("model offline")})

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-6",
		Message:    "אני צריך מחשב",
	})
	require.NoError(t, err)
	assert.Contains(t, res.AssistantMessage, "שימוש")
}

func TestNoMatchReply(t *testing.T) {
	// Catalog holds only an expensive gaming desktop; the student budget
	// filters everything out.
	expensive := studentLaptop()
	expensive.Price = 9000
	f := newSalesFixture(&fakeLLM{reply: "unused"}, expensive)

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-7",
		Message:    "אני סטודנט ומחפש מחשב נייד ללימודים בתקציב 4000",
	})
	require.NoError(t, err)

	assert.Contains(t, res.AssistantMessage, "אין לי כרגע מוצרים במלאי")
	assert.Empty(t, res.RecommendedItems)
	assert.Empty(t, f.uow.recs.created)
	assert.Equal(t, 0, f.llm.calls)
}

func TestBundleBudgetSplit(t *testing.T) {
	// 75% of the 4000 budget goes to the computer, so a 3500 laptop is out
	// and the 2290 one wins; the mouse rides on the remaining 25%.
	pricier := studentLaptop()
	pricier.SKU = "LT-ST-2"
	pricier.Price = 3500

	f := newSalesFixture(&fakeLLM{reply: "ממליץ על המחשב במחיר 2290 ₪"}, studentLaptop(), pricier, storeMouse())

	res, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-8",
		Message:    "אני סטודנט, מחפש מחשב נייד ללימודים ועכבר בתקציב 4000",
	})
	require.NoError(t, err)

	require.Len(t, res.RecommendedItems, 1)
	assert.Equal(t, "LT-ST-1", res.RecommendedItems[0].SKU)
	require.NotNil(t, res.UpsellItem)
	assert.Equal(t, "AC-MS-1", res.UpsellItem.SKU)
}

type failingMessageRepo struct {
	fakeMessageRepo
	createErr error
}

func (f *failingMessageRepo) Create(context.Context, *entity.ChatMessage) error {
	return f.createErr
}

type failingMessageUnitOfWork struct {
	fakeUnitOfWork
	failing *failingMessageRepo
}

func (f *failingMessageUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return f.failing
}

func TestStorageFailureSurfacesAsRecommendationFailed(t *testing.T) {
	uow := &failingMessageUnitOfWork{
		fakeUnitOfWork: fakeUnitOfWork{
			sessions: &fakeSessionRepo{sessions: map[string]*entity.ChatSession{}},
			messages: &fakeMessageRepo{},
			recs:     &fakeRecommendationRepo{},
			products: &fakeProductRepo{},
		},
		failing: &failingMessageRepo{createErr: errors.New("connection refused")},
	}
	log := logger.NopLogger{}
	extractor := slots.NewExtractor()

	svc := NewSalesService(
		&fakeUowFactory{uow: uow},
		memory.NewSessionCache(),
		stage.NewClassifier(extractor, log),
		archetype.NewClassifier(extractor, log),
		catalogfilter.NewFilter(uow.products, log),
		upsell.NewSelector(uow.products, extractor, log),
		prompt.NewBuilder(),
		&fakeLLM{reply: "unused"},
		&fakePublisher{},
		config.SalesConfig{
			BundleComputerShare: 0.75,
			AccessoryBudgetCap:  1000,
			GenerateTimeout:     time.Second,
			CatalogLimit:        5,
		},
		log,
	)

	_, err := svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-10",
		Message:    "אני צריך מחשב",
	})
	require.Error(t, err)

	// Internal failures surface as one condition; the cause stays wrapped
	// underneath it.
	var recErr *dialogue.RecommendationFailedError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, "persist user message", recErr.Op)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestArchetypePersistsOnSession(t *testing.T) {
	f := newSalesFixture(&fakeLLM{reply: "בטח!"})

	_, err := f.svc.ProcessMessage(context.Background(), &dto.SendMessageRequest{
		SessionKey: "sess-9",
		Message:    "אני גיימר ואוהב משחקים, צריך מחשב",
	})
	require.NoError(t, err)

	session := f.uow.sessions.sessions["sess-9"]
	require.NotNil(t, session)
	assert.Equal(t, "Gamer", session.CustomerType)
}
