package usecase

// Prompt catalogue. Loaded once as immutable package data; the section
// prompts each carry a <CV_TEXT> placeholder substituted per request.

const cvTextPlaceholder = "<CV_TEXT>"

const systemPrompt = "You are a smart assistant to career advisors at the Harvard Extension School. You will reply with JSON only."

const systemTailoring = `You are a smart assistant to career advisors at the Harvard Extension School. Your task is to rewrite
resumes to be more brief and convincing according to the Resumes and Cover Letters guide.`

const tailoringPrompt = `Consider the following CV:
<CV_TEXT>

Your task is to rewrite the given CV. Follow these guidelines:
- Be truthful and objective to the experience listed in the CV
- Be specific rather than general
- Rewrite job highlight items using STAR methodology (but do not mention STAR explicitly)
- Fix spelling and grammar errors
- Write to express not impress
- Articulate and don't be flowery
- Prefer active voice over passive voice
- Do not include a summary about the candidate

Improved CV:`

const basicsPrompt = `You are going to write a JSON resume section for an applicant applying for job posts.

Consider the following CV:
<CV_TEXT>

Now consider the following TypeScript Interface for the JSON schema:

interface Basics {
    name: string;
    email: string;
    phone: string;
    website: string;
    address: string;
}

Write the basics section according to the Basic schema. On the response, include only the JSON.`

const educationPrompt = `You are going to write a JSON resume section for an applicant applying for job posts.

Consider the following CV:
<CV_TEXT>

Now consider the following TypeScript Interface for the JSON schema:

interface EducationItem {
    institution: string;
    area: string;
    additionalAreas: string[];
    studyType: string;
    startDate: string;
    endDate: string;
    score: string;
    location: string;
}

interface Education {
    education: EducationItem[];
}

Write the education section according to the Education schema. On the response, include only the JSON.`

const awardsPrompt = `You are going to write a JSON resume section for an applicant applying for job posts.

Consider the following CV:
<CV_TEXT>

Now consider the following TypeScript Interface for the JSON schema:

interface AwardItem {
    title: string;
    date: string;
    awarder: string;
    summary: string;
}

interface Awards {
    awards: AwardItem[];
}

Write the awards section according to the Awards schema. Include only the awards section. On the response, include only the JSON.`

const projectsPrompt = `You are going to write a JSON resume section for an applicant applying for job posts.

Consider the following CV:
<CV_TEXT>

Now consider the following TypeScript Interface for the JSON schema:

interface ProjectItem {
    name: string;
    description: string;
    keywords: string[];
    url: string;
}

interface Projects {
    projects: ProjectItem[];
}

Write the projects section according to the Projects schema. Include all projects, but only the ones present in the CV. On the response, include only the JSON.`

const skillsPrompt = `You are going to write a JSON resume section for an applicant applying for job posts.

Consider the following CV:
<CV_TEXT>

type HardSkills = "Programming Languages" | "Tools" | "Frameworks" | "Computer Proficiency";
type SoftSkills = "Team Work" | "Communication" | "Leadership" | "Problem Solving" | "Creativity";
type OtherSkills = string;

Now consider the following TypeScript Interface for the JSON schema:

interface SkillItem {
    name: HardSkills | SoftSkills | OtherSkills;
    keywords: string[];
}

interface Skills {
    skills: SkillItem[];
}

Write the skills section according to the Skills schema. Include only up to the top 4 skill names that are present in the CV and related with the education and work experience. On the response, include only the JSON.`

const workPrompt = `You are going to write a JSON resume section for an applicant applying for job posts.

Consider the following CV:
<CV_TEXT>

Now consider the following TypeScript Interface for the JSON schema:

interface WorkItem {
    company: string;
    position: string;
    startDate: string;
    endDate: string;
    location: string;
    highlights: string[];
}

interface Work {
    work: WorkItem[];
}

Write a work section for the candidate according to the Work schema. Include only the work experience and not the project experience. For each work experience, provide a company name, position name, start and end date, and bullet point for the highlights. Follow the Harvard Extension School Resume guidelines and phrase the highlights with the STAR methodology`

type sectionPrompt struct {
	name   string
	prompt string
}

// sectionPrompts fixes the order in which resume sections are synthesized.
// Each prompt yields a disjoint top-level key.
var sectionPrompts = []sectionPrompt{
	{"basics", basicsPrompt},
	{"education", educationPrompt},
	{"awards", awardsPrompt},
	{"projects", projectsPrompt},
	{"skills", skillsPrompt},
	{"work", workPrompt},
}

const systemCoverLetter = "You are an expert in writing professional cover letters."

const coverLetterPrompt = `Write a professional cover letter for the following job details:
- Job Title: %s
- Company Name: %s
- Location: %s
- Job Description: %s

Use the following resume information: %s

Generate only 3 paragraphs of content (no salutations, no closing). Each paragraph should be complete sentences ending with periods.`

const systemAnalysis = "You are an expert career coach and resume analyst. Provide detailed, actionable feedback in valid JSON format only."

const analysisPrompt = `Analyze the following resume against the job description and provide a comprehensive assessment.

RESUME:
%s

JOB DESCRIPTION:
%s

Provide your analysis in the following JSON format:
{
    "match_score": <0-100 integer>,
    "strengths": ["strength1", "strength2", "strength3"],
    "gaps": ["gap1", "gap2", "gap3"],
    "suggestions": ["suggestion1", "suggestion2", "suggestion3"],
    "keyword_analysis": {
        "missing_keywords": ["keyword1", "keyword2"],
        "present_keywords": ["keyword1", "keyword2"],
        "keyword_density_score": <0-100 integer>
    },
    "section_recommendations": {
        "skills": "recommendation for skills section",
        "experience": "recommendation for experience section",
        "education": "recommendation for education section"
    }
}

Be specific and actionable in your recommendations.`

const systemEnhancement = "You are an expert resume writer. Generate enhanced, job-tailored content in valid JSON format only."

const enhancementPrompt = `Based on this resume and job description, generate enhanced content:

RESUME:
%s

JOB DESCRIPTION:
%s

Generate enhanced versions in JSON format:
{
    "enhanced_summary": "An improved professional summary tailored to the job",
    "enhanced_skills": ["skill1", "skill2", "skill3"],
    "enhanced_experience_bullets": [
        "Enhanced bullet point 1 with metrics and keywords",
        "Enhanced bullet point 2 with impact and results",
        "Enhanced bullet point 3 with relevant achievements"
    ],
    "cover_letter_outline": {
        "opening": "Compelling opening paragraph",
        "body": "Main body highlighting relevant experience",
        "closing": "Strong closing paragraph"
    }
}

Focus on incorporating job-relevant keywords and quantifiable achievements.`
