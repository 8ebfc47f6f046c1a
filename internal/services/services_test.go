package services_test

import (
	"os"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	mockBilling "github.com/svnhec/qoda-sub003/internal/common/billing/mock"
	"github.com/svnhec/qoda-sub003/internal/common/cache"
	mockIDGenerator "github.com/svnhec/qoda-sub003/internal/common/idgenerator/mock"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	mockMetrics "github.com/svnhec/qoda-sub003/internal/common/metrics/mock"
	mockPublisher "github.com/svnhec/qoda-sub003/internal/common/publisher/mock"
	mockRetry "github.com/svnhec/qoda-sub003/internal/common/retry/mock"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/repositories/mock"
	"github.com/svnhec/qoda-sub003/internal/services"
)

const testSigningSecret = "whsec_test"

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository          *mock.MockSQLRepository
	mockAccountRepository      *mock.MockAccountRepository
	mockJournalRepository      *mock.MockJournalRepository
	mockOrganizationRepository *mock.MockOrganizationRepository
	mockAgentRepository        *mock.MockAgentRepository
	mockSettlementRepository   *mock.MockSettlementRepository
	mockFundingRepository      *mock.MockFundingRepository
	mockAuditRepository        *mock.MockAuditRepository
	mockCacheRepository        *mock.MockCacheRepository

	mockIDGenerator   *mockIDGenerator.MockGenerator
	mockPublisher     *mockPublisher.MockPublisher
	mockBillingClient *mockBilling.MockClient
	mockRetryer       *mockRetry.MockRetryer

	accountService    services.AccountService
	journalService    services.JournalService
	balanceService    services.BalanceService
	fundingService    services.FundingService
	settlementService services.SettlementService
	billingService    services.BillingService
	auditService      services.AuditService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockAccountRepository := mock.NewMockAccountRepository(mockCtrl)
	mockJournalRepository := mock.NewMockJournalRepository(mockCtrl)
	mockOrganizationRepository := mock.NewMockOrganizationRepository(mockCtrl)
	mockAgentRepository := mock.NewMockAgentRepository(mockCtrl)
	mockSettlementRepository := mock.NewMockSettlementRepository(mockCtrl)
	mockFundingRepository := mock.NewMockFundingRepository(mockCtrl)
	mockAuditRepository := mock.NewMockAuditRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)

	mockIDGen := mockIDGenerator.NewMockGenerator(mockCtrl)
	mockPub := mockPublisher.NewMockPublisher(mockCtrl)
	mockBillingClient := mockBilling.NewMockClient(mockCtrl)
	mockRetryer := mockRetry.NewMockRetryer(mockCtrl)

	mockMtc := mockMetrics.NewMockMetrics(mockCtrl)
	mockMtc.EXPECT().GetSettlementPrometheus().Return(nil).AnyTimes()
	mockMtc.EXPECT().GetBillingPrometheus().Return(nil).AnyTimes()

	mockSQLRepository.EXPECT().GetAccountRepository().Return(mockAccountRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetJournalRepository().Return(mockJournalRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetOrganizationRepository().Return(mockOrganizationRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetAgentRepository().Return(mockAgentRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetSettlementRepository().Return(mockSettlementRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetFundingRepository().Return(mockFundingRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetAuditRepository().Return(mockAuditRepository).AnyTimes()

	conf := config.Config{
		Ledger: config.LedgerConfig{
			BalanceTTL:            time.Minute,
			ReversalTimeRangeDays: 90,
		},
		Settlement: config.SettlementConfig{
			DefaultMarkupBasisPoints: 1250,
			HandlerTimeout:           time.Minute,
		},
		Billing: config.BillingConfig{
			MaxConcurrentClients: 2,
			RunTimeout:           time.Minute,
		},
		Webhook: config.WebhookConfig{
			SigningSecret:      testSigningSecret,
			SignatureTolerance: 5 * time.Minute,
		},
	}

	cardCache := cache.NewInMemoryClient[models.CardResolution]()
	t.Cleanup(cardCache.Close)

	serv := services.New(
		conf,
		mockSQLRepository,
		mockCacheRepository,
		cardCache,
		mockPub,
		mockBillingClient,
		mockIDGen,
		mockRetryer,
		mockMtc,
	)

	return testServiceHelper{
		mockCtrl: mockCtrl,
		config:   conf,

		mockSQLRepository:          mockSQLRepository,
		mockAccountRepository:      mockAccountRepository,
		mockJournalRepository:      mockJournalRepository,
		mockOrganizationRepository: mockOrganizationRepository,
		mockAgentRepository:        mockAgentRepository,
		mockSettlementRepository:   mockSettlementRepository,
		mockFundingRepository:      mockFundingRepository,
		mockAuditRepository:        mockAuditRepository,
		mockCacheRepository:        mockCacheRepository,

		mockIDGenerator:   mockIDGen,
		mockPublisher:     mockPub,
		mockBillingClient: mockBillingClient,
		mockRetryer:       mockRetryer,

		accountService:    serv.Account,
		journalService:    serv.Journal,
		balanceService:    serv.Balance,
		fundingService:    serv.Funding,
		settlementService: serv.Settlement,
		billingService:    serv.Billing,
		auditService:      serv.Audit,
	}
}
